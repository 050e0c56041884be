package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/usecase"
	"mobilicity/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	CategoryID  string  `json:"category_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Condition   string  `json:"condition"`
	Location    string  `json:"location"`
	Phone       string  `json:"phone"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get(emailContextKey).(string)

	product, err := h.productUseCase.CreateListing(c.Request().Context(), sellerEmail, usecase.CreateListingInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Price:       req.Price,
		Condition:   req.Condition,
		Location:    req.Location,
		Phone:       req.Phone,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	sellerEmail := c.Get(emailContextKey).(string)

	products, err := h.productUseCase.ListBySeller(c.Request().Context(), sellerEmail)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

type advertiseRequest struct {
	Advertised bool `json:"advertised"`
}

func (h *ProductHandler) SetAdvertised(c echo.Context) error {
	var req advertiseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sellerEmail := c.Get(emailContextKey).(string)

	product, err := h.productUseCase.SetAdvertised(c.Request().Context(), c.Param("id"), sellerEmail, req.Advertised)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerEmail := c.Get(emailContextKey).(string)

	if err := h.productUseCase.DeleteListing(c.Request().Context(), c.Param("id"), sellerEmail); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, response.Ack{Acknowledged: true, Message: "Product deleted"})
}
