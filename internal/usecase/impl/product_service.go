package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Shipping:    input.Shipping,
	}
	if input.Photo != nil {
		product.Photo = *input.Photo
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (srv *productService) Update(ctx context.Context, id primitive.ObjectID, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Shipping:    input.Shipping,
	}
	if input.Photo != nil {
		product.Photo = *input.Photo
	}

	updated, err := srv.productRepo.Update(ctx, id, product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to update product", slog.String("productId", id.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return updated, nil
}

func (srv *productService) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	deleted, err := srv.productRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductMissing
		}
		srv.log(ctx).Error("Failed to delete product", slog.String("productId", id.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete product")
	}

	return deleted, nil
}

func (srv *productService) Latest(ctx context.Context) ([]*entity.ProductView, error) {
	products, err := srv.productRepo.FindLatest(ctx, usecase.LatestProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest products")
	}

	return srv.resolveCategories(ctx, products)
}

func (srv *productService) GetBySlug(ctx context.Context, slugValue string) (*entity.ProductView, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	views, err := srv.resolveCategories(ctx, []*entity.Product{product})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// Photo returns the stored blob. A product without an uploaded photo is a
// distinct failure from a missing product.
func (srv *productService) Photo(ctx context.Context, id primitive.ObjectID) (*entity.Photo, error) {
	photo, err := srv.productRepo.FindPhoto(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product photo")
	}

	if len(photo.Data) == 0 {
		return nil, domainerrors.ErrNoPhoto
	}

	return photo, nil
}

func (srv *productService) Filter(ctx context.Context, categories []primitive.ObjectID, price *entity.PriceRange) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindFiltered(ctx, repository.ProductFilter{
		Categories: categories,
		Price:      price,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter products")
	}

	return products, nil
}

func (srv *productService) Count(ctx context.Context) (int64, error) {
	total, err := srv.productRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

func (srv *productService) Page(ctx context.Context, page int) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindPage(ctx, page, usecase.ProductsPerPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to page products")
	}

	return products, nil
}

func (srv *productService) Search(ctx context.Context, keyword string) ([]*entity.Product, error) {
	products, err := srv.productRepo.Search(ctx, keyword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

func (srv *productService) Related(ctx context.Context, productID, categoryID primitive.ObjectID) ([]*entity.ProductView, error) {
	products, err := srv.productRepo.FindRelated(ctx, categoryID, productID, usecase.RelatedProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list related products")
	}

	return srv.resolveCategories(ctx, products)
}

func (srv *productService) ByCategorySlug(ctx context.Context, slugValue string) (*entity.Category, []*entity.ProductView, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil, domainerrors.ErrCategoryNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find category")
	}

	products, err := srv.productRepo.FindByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list products by category")
	}

	views, err := srv.resolveCategories(ctx, products)
	if err != nil {
		return nil, nil, err
	}

	return category, views, nil
}

// resolveCategories swaps each product's category reference for the full
// document, one lookup per distinct category. A deleted category resolves
// to null rather than failing the listing.
func (srv *productService) resolveCategories(ctx context.Context, products []*entity.Product) ([]*entity.ProductView, error) {
	cache := make(map[primitive.ObjectID]*entity.Category)

	views := make([]*entity.ProductView, 0, len(products))
	for _, product := range products {
		category, ok := cache[product.Category]
		if !ok {
			found, err := srv.categoryRepo.FindByID(ctx, product.Category)
			if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, errors.Wrap(err, "failed to resolve product category")
			}
			category = found
			cache[product.Category] = category
		}

		views = append(views, &entity.ProductView{Product: *product, Category: category})
	}

	return views, nil
}
