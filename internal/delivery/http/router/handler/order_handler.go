package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// GetOrders lists the signed-in buyer's orders as a bare array.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while getting orders", err)
	}

	orders, err := h.uc.ListByBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while getting orders")
	}

	return c.JSON(http.StatusOK, orders)
}

// GetAllOrders lists every order, newest first, as a bare array.
func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	orders, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while getting orders")
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus sets an order's status and echoes the updated document.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while updating order", err)
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while updating order", err)
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while updating order")
	}

	return c.JSON(http.StatusOK, order)
}
