package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProductNotFound is returned when a product lookup resolves to nothing.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. Zero-value fields are ignored.
type ProductFilter struct {
	Categories []primitive.ObjectID
	Price      *entity.PriceRange
}

// ProductRepository defines the operations for product persistence,
// including the inline photo blob.
type ProductRepository interface {
	// Create persists a new product, photo included.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the core fields of an existing product and, when photo
	// is non-nil, the photo blob. Returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, product *entity.Product) (*entity.Product, error)

	// Delete removes a product by ID and returns the removed document.
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)

	// FindLatest lists up to limit products, newest first, photos excluded.
	FindLatest(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindBySlug retrieves a product by slug, photo excluded.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindPhoto retrieves only the photo blob of a product.
	FindPhoto(ctx context.Context, id primitive.ObjectID) (*entity.Photo, error)

	// FindFiltered lists products matching the filter, photos excluded.
	FindFiltered(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// FindPage lists one page of products, newest first, photos excluded.
	FindPage(ctx context.Context, page, perPage int) ([]*entity.Product, error)

	// Search lists products whose name or description matches the keyword,
	// case-insensitively, photos excluded.
	Search(ctx context.Context, keyword string) ([]*entity.Product, error)

	// FindRelated lists up to limit products in the same category, excluding
	// the given product, photos excluded.
	FindRelated(ctx context.Context, categoryID, excludeID primitive.ObjectID, limit int) ([]*entity.Product, error)

	// FindByCategory lists every product in a category, photos excluded.
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*entity.Product, error)
}
