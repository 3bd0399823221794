package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderUsecase is a mock implementation of usecase.OrderUsecase.
type OrderUsecase struct {
	mock.Mock
}

func (m *OrderUsecase) ListByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]*entity.OrderView, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderView), args.Error(1)
}

func (m *OrderUsecase) ListAll(ctx context.Context) ([]*entity.OrderView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderView), args.Error(1)
}

func (m *OrderUsecase) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*entity.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}
