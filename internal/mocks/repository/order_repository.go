package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository is a mock implementation of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]*entity.OrderView, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderView), args.Error(1)
}

func (m *OrderRepository) FindAll(ctx context.Context) ([]*entity.OrderView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderView), args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}
