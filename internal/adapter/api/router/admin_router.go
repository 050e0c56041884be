package router

import (
	"github.com/labstack/echo/v4"

	"mobilicity/internal/adapter/api/handler"
	"mobilicity/internal/adapter/api/middleware"
	"mobilicity/internal/domain/entity"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.Require(entity.RoleAdmin))

	admin.GET("/buyers", adminHandler.ListBuyers)
	admin.DELETE("/buyers/:id", adminHandler.DeleteUser)
	admin.GET("/sellers", adminHandler.ListSellers)
	admin.DELETE("/sellers/:id", adminHandler.DeleteUser)
	admin.PUT("/sellers/:id", adminHandler.VerifySeller)
	admin.GET("/reports", adminHandler.ListReports)
	admin.DELETE("/products/:id", adminHandler.RemoveProduct)
}
