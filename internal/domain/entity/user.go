// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record. The email is unique across the store; the
// answer field holds the secret-question answer used by the password reset
// flow. Users are never hard-deleted.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	Answer    string             `bson:"answer" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileUpdate carries the mutable profile fields for an update. Nil-ish
// (empty) fields fall back to the stored value, matching the legacy client.
type ProfileUpdate struct {
	Name     string
	Password string
	Phone    string
	Address  string
}
