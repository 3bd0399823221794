package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user administration handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// GetAllUsers lists every account for the admin dashboard.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error in getting all users")
	}

	return response.Success(c, http.StatusOK, "All users fetched successfully", echo.Map{
		"users": users,
	})
}
