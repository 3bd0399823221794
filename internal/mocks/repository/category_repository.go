package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryRepository is a mock implementation of repository.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *CategoryRepository) Update(ctx context.Context, id primitive.ObjectID, name, slug string) (*entity.Category, error) {
	args := m.Called(ctx, id, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
