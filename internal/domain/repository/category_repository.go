package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrCategoryNotFound is returned when a category lookup resolves to nothing.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a category by ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Category, error)

	// FindByName retrieves a category by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindBySlug retrieves a category by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update replaces the name and slug of an existing category and returns
	// the updated document.
	Update(ctx context.Context, id primitive.ObjectID, name, slug string) (*entity.Category, error)

	// FindAll lists every category.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Delete removes a category by ID.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
