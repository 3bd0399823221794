package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryUsecase defines the interface for category management operations.
type CategoryUsecase interface {
	// Create adds a new category; the slug is derived from the name.
	Create(ctx context.Context, name string) (*entity.Category, error)

	// Update renames a category and refreshes its slug.
	Update(ctx context.Context, id primitive.ObjectID, name string) (*entity.Category, error)

	// List returns every category.
	List(ctx context.Context) ([]*entity.Category, error)

	// GetBySlug returns the category matching the slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// Delete removes a category. Products referencing it keep their dangling
	// reference.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
