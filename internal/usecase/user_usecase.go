// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Answer   string
}

// LoginOutput returns the minted token alongside the account it belongs to.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new shopper account. Registering an email that
	// already exists fails with the duplicate-registration error.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login authenticates the credentials and mints a bearer token.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	// ResetPassword replaces the password of the account matching both the
	// email and the secret-question answer.
	ResetPassword(ctx context.Context, email, answer, newPassword string) error

	// UpdateProfile applies the provided profile fields and returns the
	// updated account.
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update *entity.ProfileUpdate) (*entity.User, error)

	// ListUsers returns every account on record.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
