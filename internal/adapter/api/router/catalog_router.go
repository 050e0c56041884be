package router

import (
	"github.com/labstack/echo/v4"

	"mobilicity/internal/adapter/api/handler"
)

// Public catalog browse.
func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	e.GET("/categories", catalogHandler.ListCategories)
	e.GET("/categories/:id", catalogHandler.CategoryProducts)
	e.GET("/advertisedProducts", catalogHandler.AdvertisedProducts)
}
