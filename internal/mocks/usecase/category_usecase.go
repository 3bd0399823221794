package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryUsecase is a mock implementation of usecase.CategoryUsecase.
type CategoryUsecase struct {
	mock.Mock
}

func (m *CategoryUsecase) Create(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryUsecase) Update(ctx context.Context, id primitive.ObjectID, name string) (*entity.Category, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryUsecase) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *CategoryUsecase) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryUsecase) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
