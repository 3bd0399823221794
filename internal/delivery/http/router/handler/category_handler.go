package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: logger}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory adds a new category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while creating category", err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return response.Fail(c, http.StatusUnprocessableEntity, "Category name cannot be empty")
	}

	category, err := h.uc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while creating category")
	}

	return response.Success(c, http.StatusCreated, "New category created", echo.Map{
		"category": category,
	})
}

// UpdateCategory renames a category.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while updating category", err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return response.Fail(c, http.StatusUnprocessableEntity, "New category name cannot be empty")
	}

	rawID := c.Param("id")
	if rawID == "" {
		return response.Fail(c, http.StatusUnprocessableEntity, "Category id cannot be empty")
	}

	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while updating category", err)
	}

	category, err := h.uc.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while updating category")
	}

	return response.Success(c, http.StatusOK, "Category updated successfully", echo.Map{
		"category": category,
	})
}

// GetAllCategories lists every category.
func (h *CategoryHandler) GetAllCategories(c echo.Context) error {
	categories, err := h.uc.List(c.Request().Context())
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while fetching categories")
	}

	return response.Success(c, http.StatusOK, "All categories fetched", echo.Map{
		"category": categories,
	})
}

// GetCategory returns one category by slug. The misspelled success message
// is contracted.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error While getting Single Category")
	}

	return response.Success(c, http.StatusOK, "Get SIngle Category SUccessfully", echo.Map{
		"category": category,
	})
}

// DeleteCategory removes a category. The misspelled success message is
// contracted.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "error while deleting category", err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "error while deleting category")
	}

	return response.Success(c, http.StatusOK, "Categry Deleted Successfully", nil)
}
