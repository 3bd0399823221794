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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new category. Uniqueness is checked on the exact name, so
// two names differing only in case coexist, each with its own slug.
func (srv *categoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	existing, err := srv.categoryRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing category")
	}
	if existing != nil {
		return nil, domainerrors.ErrCategoryExists
	}

	category := &entity.Category{
		Name: name,
		Slug: slug.Make(name),
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, id primitive.ObjectID, name string) (*entity.Category, error) {
	category, err := srv.categoryRepo.Update(ctx, id, name, slug.Make(name))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}
		srv.log(ctx).Error("Failed to update category", slog.String("categoryId", id.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) GetBySlug(ctx context.Context, slugValue string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// Delete removes a category. Products keep their reference; the storefront
// tolerates the dangling id.
func (srv *categoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}
		srv.log(ctx).Error("Failed to delete category", slog.String("categoryId", id.Hex()), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
