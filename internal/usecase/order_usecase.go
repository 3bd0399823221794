package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderUsecase defines the interface for order management operations.
type OrderUsecase interface {
	// ListByBuyer returns the orders one shopper placed, references resolved.
	ListByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]*entity.OrderView, error)

	// ListAll returns every order, newest first, references resolved.
	ListAll(ctx context.Context) ([]*entity.OrderView, error)

	// UpdateStatus sets an order's status after validating it against the
	// enumeration.
	UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*entity.Order, error)
}
