package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) ListByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]*entity.OrderView, error) {
	orders, err := srv.orderRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) ListAll(ctx context.Context) ([]*entity.OrderView, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateStatus validates the requested status against the enumeration before
// touching the store, so an arbitrary string can never be persisted.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*entity.Order, error) {
	next := entity.OrderStatus(status)
	if !next.Valid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	order, err := srv.orderRepo.UpdateStatus(ctx, orderID, next)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		srv.log(ctx).Error("Failed to update order status", slog.String("orderId", orderID.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update order status")
	}

	return order, nil
}
