package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

type productFiltersRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

// CreateProduct adds a product from a multipart form, photo included.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, errMessage := h.bindProductForm(c, true)
	if errMessage != "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": errMessage})
	}

	product, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error in creating product")
	}

	return response.Success(c, http.StatusCreated, "Product Created Successfully", echo.Map{
		"products": product,
	})
}

// UpdateProduct replaces a product's fields from a multipart form. A form
// without a photo keeps the stored blob.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	rawID := c.Param("pid")
	if rawID == "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "PID is Required"})
	}

	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error in updating product", err)
	}

	input, errMessage := h.bindProductForm(c, false)
	if errMessage != "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": errMessage})
	}

	product, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error in updating product")
	}

	return response.Success(c, http.StatusCreated, "Product Updated Successfully", echo.Map{
		"products": product,
	})
}

// DeleteProduct removes a product and echoes the removed document.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	rawID := c.Param("pid")
	if rawID == "" {
		return response.Fail(c, http.StatusBadRequest, "Product ID is required")
	}

	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid product ID format")
	}

	product, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while deleting product")
	}

	return response.Success(c, http.StatusOK, "Product deleted successfully", echo.Map{
		"product": product,
	})
}

// GetProducts lists the newest products for the homepage. The trailing
// space in the message is contracted.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.uc.Latest(c.Request().Context())
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error in getting products")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"counTotal": len(products),
		"message":   "All Products: ",
		"products":  products,
	})
}

// GetProduct returns one product by slug.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while getting single product")
	}

	return response.Success(c, http.StatusOK, "Single Product Fetched", echo.Map{
		"product": product,
	})
}

// GetProductPhoto streams the stored photo bytes with their content type.
func (h *ProductHandler) GetProductPhoto(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while getting photo", err)
	}

	photo, err := h.uc.Photo(c.Request().Context(), id)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while getting photo")
	}

	return c.Blob(http.StatusOK, photo.ContentType, photo.Data)
}

// FilterProducts narrows the catalog by category checkboxes and a price
// radio range.
func (h *ProductHandler) FilterProducts(c echo.Context) error {
	var req productFiltersRequest
	if err := c.Bind(&req); err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while filtering products", err)
	}

	categories := make([]primitive.ObjectID, 0, len(req.Checked))
	for _, raw := range req.Checked {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return response.FailWithErr(c, http.StatusInternalServerError, "Error while filtering products", err)
		}
		categories = append(categories, id)
	}

	var price *entity.PriceRange
	if len(req.Radio) >= 2 {
		price = &entity.PriceRange{Min: req.Radio[0], Max: req.Radio[1]}
	}

	products, err := h.uc.Filter(c.Request().Context(), categories, price)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while filtering products")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"products": products,
	})
}

// ProductCount returns the catalog size.
func (h *ProductHandler) ProductCount(c echo.Context) error {
	total, err := h.uc.Count(c.Request().Context())
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error in product count")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"total":   total,
	})
}

// ProductList returns one load-more page. The lowercase message is
// contracted.
func (h *ProductHandler) ProductList(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		page = 1
	}

	products, err := h.uc.Page(c.Request().Context(), page)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "error in per page ctrl")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"products": products,
	})
}

// SearchProducts returns keyword matches as a bare array.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	products, err := h.uc.Search(c.Request().Context(), c.Param("keyword"))
	if err != nil {
		return response.FromError(c, err, http.StatusBadRequest, "Error In Search Product API")
	}

	return c.JSON(http.StatusOK, products)
}

// RelatedProducts lists products sharing the given product's category.
func (h *ProductHandler) RelatedProducts(c echo.Context) error {
	productID, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while getting related product", err)
	}

	categoryID, err := primitive.ObjectIDFromHex(c.Param("cid"))
	if err != nil {
		return response.FailWithErr(c, http.StatusInternalServerError, "Error while getting related product", err)
	}

	products, err := h.uc.Related(c.Request().Context(), productID, categoryID)
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while getting related product")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"products": products,
	})
}

// ProductsByCategory lists a category's products alongside the category.
func (h *ProductHandler) ProductsByCategory(c echo.Context) error {
	category, products, err := h.uc.ByCategorySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.FromError(c, err, http.StatusInternalServerError, "Error while getting products")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"category": category,
		"products": products,
	})
}

// bindProductForm reads the multipart product form. Field checks run in a
// fixed order; the returned message is the contracted per-field error, empty
// when the form is complete. photoRequired distinguishes create from update.
func (h *ProductHandler) bindProductForm(c echo.Context, photoRequired bool) (*usecase.ProductInput, string) {
	name := c.FormValue("name")
	description := c.FormValue("description")
	rawPrice := c.FormValue("price")
	rawCategory := c.FormValue("category")
	rawQuantity := c.FormValue("quantity")
	rawShipping := c.FormValue("shipping")

	file, fileErr := c.FormFile("photo")

	switch {
	case name == "":
		return nil, "Name is Required"
	case description == "":
		return nil, "Description is Required"
	case rawPrice == "":
		return nil, "Price is Required"
	case rawCategory == "":
		return nil, "Category is Required"
	case rawQuantity == "":
		return nil, "Quantity is Required"
	case photoRequired && fileErr != nil:
		return nil, "Photo is Required"
	case fileErr == nil && file.Size > entity.MaxPhotoBytes:
		return nil, "Photo Should Be Smaller Than 1MB"
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return nil, "Price is Required"
	}

	category, err := primitive.ObjectIDFromHex(rawCategory)
	if err != nil {
		return nil, "Category is Required"
	}

	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		return nil, "Quantity is Required"
	}

	shipping, _ := strconv.ParseBool(rawShipping)

	input := &usecase.ProductInput{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Quantity:    quantity,
		Shipping:    shipping,
	}

	if fileErr == nil {
		photo, err := readPhoto(file)
		if err != nil {
			h.logger.Error("Failed to read uploaded photo", slog.Any("error", err))

			return nil, "Photo is Required"
		}
		input.Photo = photo
	}

	return input, ""
}

func readPhoto(file *multipart.FileHeader) (*entity.Photo, error) {
	src, err := file.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo upload")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read photo upload")
	}

	return &entity.Photo{Data: data, ContentType: file.Header.Get(echo.HeaderContentType)}, nil
}
