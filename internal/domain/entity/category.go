package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products. The slug is derived deterministically from the
// name and serves as the external lookup key.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
}
