// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is returned when a user lookup resolves to nothing.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailAndAnswer retrieves the user matching both the email and the
	// secret-question answer; used by the password reset flow.
	FindByEmailAndAnswer(ctx context.Context, email, answer string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashed string) error

	// UpdateProfile applies the given fields and returns the updated document,
	// mirroring a findByIdAndUpdate with the new-document option.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update *entity.ProfileUpdate) (*entity.User, error)

	// FindAll lists every user record.
	FindAll(ctx context.Context) ([]*entity.User, error)
}
