package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing sizes fixed by the storefront pages.
const (
	// LatestProductsLimit caps the homepage listing.
	LatestProductsLimit = 12

	// ProductsPerPage is the load-more page size.
	ProductsPerPage = 6

	// RelatedProductsLimit caps the similar-products strip.
	RelatedProductsLimit = 3
)

// ProductInput defines the data required to create or update a product.
// Photo is nil when the request carries none.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    primitive.ObjectID
	Quantity    int
	Shipping    bool
	Photo       *entity.Photo
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// Create adds a new product; the slug is derived from the name.
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// Update replaces the core fields of a product. A nil photo keeps the
	// stored blob.
	Update(ctx context.Context, id primitive.ObjectID, input *ProductInput) (*entity.Product, error)

	// Delete removes a product and returns the removed document.
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)

	// Latest returns the newest products for the homepage, categories
	// resolved.
	Latest(ctx context.Context) ([]*entity.ProductView, error)

	// GetBySlug returns one product by slug, photo excluded, category
	// resolved.
	GetBySlug(ctx context.Context, slug string) (*entity.ProductView, error)

	// Photo returns the photo blob of a product.
	Photo(ctx context.Context, id primitive.ObjectID) (*entity.Photo, error)

	// Filter returns products matching the category and price constraints.
	Filter(ctx context.Context, categories []primitive.ObjectID, price *entity.PriceRange) ([]*entity.Product, error)

	// Count returns the catalog size.
	Count(ctx context.Context) (int64, error)

	// Page returns one load-more page, newest first.
	Page(ctx context.Context, page int) ([]*entity.Product, error)

	// Search returns products whose name or description matches the keyword.
	Search(ctx context.Context, keyword string) ([]*entity.Product, error)

	// Related returns products sharing a category with the given product,
	// categories resolved.
	Related(ctx context.Context, productID, categoryID primitive.ObjectID) ([]*entity.ProductView, error)

	// ByCategorySlug returns a category and every product in it, categories
	// resolved.
	ByCategorySlug(ctx context.Context, slug string) (*entity.Category, []*entity.ProductView, error)
}
