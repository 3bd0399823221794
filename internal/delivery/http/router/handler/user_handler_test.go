package handler

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_GetAllUsers(t *testing.T) {
	users := []*entity.User{
		{Name: "Sheen", Email: "sheen@example.com"},
		{Name: "Admin", Email: "admin@example.com", Role: entity.RoleAdmin},
	}

	uc := new(mockusecase.UserUsecase)
	uc.On("ListUsers", mock.Anything).Return(users, nil)

	h := NewUserHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodGet, "/api/v1/user/all-users", "")
	assert.NoError(t, h.GetAllUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All users fetched successfully")
	assert.Contains(t, rec.Body.String(), "sheen@example.com")
}

func TestUserHandler_GetAllUsersFailure(t *testing.T) {
	uc := new(mockusecase.UserUsecase)
	uc.On("ListUsers", mock.Anything).Return(nil, errors.New("connection reset"))

	h := NewUserHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodGet, "/api/v1/user/all-users", "")
	assert.NoError(t, h.GetAllUsers(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"connection reset","message":"Error in getting all users"}`, rec.Body.String())
}
