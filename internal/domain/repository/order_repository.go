package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrOrderNotFound is returned when an order lookup resolves to nothing.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence. Read
// operations resolve product and buyer references, matching the populated
// documents the client consumes.
type OrderRepository interface {
	// FindByBuyer lists the orders placed by one buyer.
	FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]*entity.OrderView, error)

	// FindAll lists every order, newest first.
	FindAll(ctx context.Context) ([]*entity.OrderView, error)

	// UpdateStatus sets the status of an order and returns the updated
	// document. Last write wins; there is no optimistic concurrency check.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.OrderStatus) (*entity.Order, error)
}
