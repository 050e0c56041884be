package router

import (
	"github.com/labstack/echo/v4"

	"mobilicity/internal/adapter/api/handler"
	"mobilicity/internal/adapter/api/middleware"
	"mobilicity/internal/domain/entity"
)

func SetupSellerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()

	sellers := e.Group("/sellers")
	sellers.Use(authMiddleware.Authenticate)
	sellers.Use(roleMiddleware.Require(entity.RoleSeller))

	sellers.POST("/products", productHandler.CreateProduct)
	sellers.GET("/products", productHandler.ListMyProducts)
	sellers.PUT("/products/:id", productHandler.SetAdvertised)
	sellers.DELETE("/products/:id", productHandler.DeleteProduct)
}
