package handler

import (
	"net/http"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderHandler_GetOrders(t *testing.T) {
	buyerID := primitive.NewObjectID()
	orders := []*entity.OrderView{
		{ID: primitive.NewObjectID(), Status: entity.StatusProcessing},
	}

	uc := new(mockusecase.OrderUsecase)
	uc.On("ListByBuyer", mock.Anything, buyerID).Return(orders, nil)

	h := NewOrderHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodGet, "/api/v1/auth/orders", "")
	middleware.SetIdentity(c, &service.Claims{UserID: buyerID.Hex()})

	assert.NoError(t, h.GetOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
	uc.AssertExpectations(t)
}

func TestOrderHandler_GetOrdersNoIdentity(t *testing.T) {
	uc := new(mockusecase.OrderUsecase)
	h := NewOrderHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodGet, "/api/v1/auth/orders", "")
	assert.NoError(t, h.GetOrders(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error while getting orders")
	uc.AssertNotCalled(t, "ListByBuyer", mock.Anything, mock.Anything)
}

func TestOrderHandler_GetAllOrders(t *testing.T) {
	orders := []*entity.OrderView{
		{ID: primitive.NewObjectID()},
		{ID: primitive.NewObjectID()},
	}

	uc := new(mockusecase.OrderUsecase)
	uc.On("ListAll", mock.Anything).Return(orders, nil)

	h := NewOrderHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodGet, "/api/v1/auth/all-orders", "")
	assert.NoError(t, h.GetAllOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	orderID := primitive.NewObjectID()
	updated := &entity.Order{ID: orderID, Status: entity.StatusShipped}

	uc := new(mockusecase.OrderUsecase)
	uc.On("UpdateStatus", mock.Anything, orderID, "Shipped").Return(updated, nil)

	h := NewOrderHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPut, "/api/v1/auth/order-status/"+orderID.Hex(), `{"status":"Shipped"}`)
	c.SetParamNames("orderId")
	c.SetParamValues(orderID.Hex())

	assert.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shipped")
}

func TestOrderHandler_UpdateOrderStatusBadID(t *testing.T) {
	uc := new(mockusecase.OrderUsecase)
	h := NewOrderHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPut, "/api/v1/auth/order-status/nope", `{"status":"Shipped"}`)
	c.SetParamNames("orderId")
	c.SetParamValues("nope")

	assert.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error while updating order")
	uc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_UpdateOrderStatusInvalidValue(t *testing.T) {
	orderID := primitive.NewObjectID()

	uc := new(mockusecase.OrderUsecase)
	uc.On("UpdateStatus", mock.Anything, orderID, "Teleported").
		Return(nil, domainerrors.ErrInvalidOrderStatus)

	h := NewOrderHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPut, "/api/v1/auth/order-status/"+orderID.Hex(), `{"status":"Teleported"}`)
	c.SetParamNames("orderId")
	c.SetParamValues(orderID.Hex())

	assert.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid order status"}`, rec.Body.String())
}
