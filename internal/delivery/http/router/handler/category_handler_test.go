package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCategoryHandler_CreateCategory(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	uc.On("Create", mock.Anything, "Books").
		Return(&entity.Category{Name: "Books", Slug: "books"}, nil)

	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPost, "/api/v1/category/create-category", `{"name":"Books"}`)
	assert.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "New category created")
}

func TestCategoryHandler_CreateCategoryEmptyName(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPost, "/api/v1/category/create-category", `{"name":""}`)
	assert.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Category name cannot be empty"}`, rec.Body.String())
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryHandler_CreateCategoryWhitespaceName(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPost, "/api/v1/category/create-category", `{"name":"    "}`)
	assert.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Category name cannot be empty"}`, rec.Body.String())
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryHandler_CreateCategoryDuplicate(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	uc.On("Create", mock.Anything, "Books").Return(nil, domainerrors.ErrCategoryExists)

	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPost, "/api/v1/category/create-category", `{"name":"Books"}`)
	assert.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Category already exists"}`, rec.Body.String())
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	id := primitive.NewObjectID()

	uc := new(mockusecase.CategoryUsecase)
	uc.On("Update", mock.Anything, id, "Comics").
		Return(&entity.Category{ID: id, Name: "Comics", Slug: "comics"}, nil)

	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPut, "/api/v1/category/update-category/"+id.Hex(), `{"name":"Comics"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	assert.NoError(t, h.UpdateCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category updated successfully")
}

func TestCategoryHandler_UpdateCategoryEmptyName(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPut, "/api/v1/category/update-category/abc", `{"name":""}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	assert.NoError(t, h.UpdateCategory(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"New category name cannot be empty"}`, rec.Body.String())
	uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryHandler_UpdateCategoryWhitespaceName(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPut, "/api/v1/category/update-category/abc", `{"name":"   "}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	assert.NoError(t, h.UpdateCategory(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"New category name cannot be empty"}`, rec.Body.String())
	uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryHandler_UpdateCategoryEmptyID(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodPut, "/api/v1/category/update-category/", `{"name":"Comics"}`)
	assert.NoError(t, h.UpdateCategory(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Category id cannot be empty"}`, rec.Body.String())
}

func TestCategoryHandler_GetAllCategories(t *testing.T) {
	categories := []*entity.Category{
		{Name: "Books", Slug: "books"},
		{Name: "Comics", Slug: "comics"},
	}

	uc := new(mockusecase.CategoryUsecase)
	uc.On("List", mock.Anything).Return(categories, nil)

	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodGet, "/api/v1/category/get-category", "")
	assert.NoError(t, h.GetAllCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All categories fetched")
	assert.Contains(t, rec.Body.String(), `"category"`)
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	uc := new(mockusecase.CategoryUsecase)
	uc.On("GetBySlug", mock.Anything, "books").
		Return(&entity.Category{Name: "Books", Slug: "books"}, nil)

	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodGet, "/api/v1/category/single-category/books", "")
	c.SetParamNames("slug")
	c.SetParamValues("books")

	assert.NoError(t, h.GetCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Get SIngle Category SUccessfully")
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	id := primitive.NewObjectID()

	uc := new(mockusecase.CategoryUsecase)
	uc.On("Delete", mock.Anything, id).Return(nil)

	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodDelete, "/api/v1/category/delete-category/"+id.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	assert.NoError(t, h.DeleteCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Categry Deleted Successfully"}`, rec.Body.String())
}

func TestCategoryHandler_DeleteCategoryUnknown(t *testing.T) {
	id := primitive.NewObjectID()

	uc := new(mockusecase.CategoryUsecase)
	uc.On("Delete", mock.Anything, id).Return(domainerrors.ErrCategoryNotFound)

	h := NewCategoryHandler(uc, newDiscardLogger())

	rec, c := jsonRequest(http.MethodDelete, "/api/v1/category/delete-category/"+id.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	assert.NoError(t, h.DeleteCategory(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Category not found"}`, rec.Body.String())
}
