package router

import (
	"github.com/labstack/echo/v4"

	"mobilicity/internal/adapter/api/handler"
	"mobilicity/internal/adapter/api/middleware"
	"mobilicity/internal/domain/entity"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("")
	payments.Use(authMiddleware.Authenticate)
	payments.Use(roleMiddleware.Require(entity.RoleBuyer))

	payments.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	payments.POST("/payments", paymentHandler.Settle)
}
