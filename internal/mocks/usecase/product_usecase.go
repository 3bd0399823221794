package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductUsecase is a mock implementation of usecase.ProductUsecase.
type ProductUsecase struct {
	mock.Mock
}

func (m *ProductUsecase) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductUsecase) Update(ctx context.Context, id primitive.ObjectID, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductUsecase) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductUsecase) Latest(ctx context.Context) ([]*entity.ProductView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ProductView), args.Error(1)
}

func (m *ProductUsecase) GetBySlug(ctx context.Context, slug string) (*entity.ProductView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ProductView), args.Error(1)
}

func (m *ProductUsecase) Photo(ctx context.Context, id primitive.ObjectID) (*entity.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *ProductUsecase) Filter(ctx context.Context, categories []primitive.ObjectID, price *entity.PriceRange) ([]*entity.Product, error) {
	args := m.Called(ctx, categories, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductUsecase) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductUsecase) Page(ctx context.Context, page int) ([]*entity.Product, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductUsecase) Search(ctx context.Context, keyword string) ([]*entity.Product, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductUsecase) Related(ctx context.Context, productID, categoryID primitive.ObjectID) ([]*entity.ProductView, error) {
	args := m.Called(ctx, productID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ProductView), args.Error(1)
}

func (m *ProductUsecase) ByCategorySlug(ctx context.Context, slug string) (*entity.Category, []*entity.ProductView, error) {
	args := m.Called(ctx, slug)

	var category *entity.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*entity.Category)
	}

	var products []*entity.ProductView
	if args.Get(1) != nil {
		products = args.Get(1).([]*entity.ProductView)
	}

	return category, products, args.Error(2)
}
