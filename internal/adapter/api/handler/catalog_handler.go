package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/usecase"
	"mobilicity/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// CategoryProducts returns {products, category}: the available products
// of the category, each joined with its seller record.
func (h *CatalogHandler) CategoryProducts(c echo.Context) error {
	result, err := h.catalogUseCase.CategoryProducts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) AdvertisedProducts(c echo.Context) error {
	products, err := h.catalogUseCase.AdvertisedProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, products)
}
