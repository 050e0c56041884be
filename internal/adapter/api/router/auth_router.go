package router

import (
	"github.com/labstack/echo/v4"

	"mobilicity/internal/adapter/api/handler"
)

// Registration, token issue and public role checks need no guard.
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.GET("/jwt", authHandler.IssueToken)
	e.POST("/users", authHandler.Register)
	e.GET("/users/admin/:email", authHandler.CheckAdmin)
	e.GET("/users/seller/:email", authHandler.CheckSeller)
	e.GET("/users/buyer/:email", authHandler.CheckBuyer)
}
