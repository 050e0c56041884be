package router

import (
	"github.com/labstack/echo/v4"

	"mobilicity/internal/adapter/api/handler"
	"mobilicity/internal/adapter/api/middleware"
	"mobilicity/internal/domain/entity"
)

func SetupBuyerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	bookingHandler := handler.GetBookingHandler()
	reportHandler := handler.GetReportHandler()

	buyer := e.Group("/buyer")
	buyer.Use(authMiddleware.Authenticate)
	buyer.Use(roleMiddleware.Require(entity.RoleBuyer))

	buyer.POST("/bookings", bookingHandler.CreateBooking)
	buyer.GET("/bookingsCheck", bookingHandler.BookingsCheck)
	buyer.POST("/reportToAdmin", reportHandler.ReportToAdmin)
	buyer.GET("/reportsCheck", reportHandler.ReportsCheck)

	// The orders page lives under its own prefix.
	buyers := e.Group("/buyers")
	buyers.Use(authMiddleware.Authenticate)
	buyers.Use(roleMiddleware.Require(entity.RoleBuyer))
	buyers.GET("/orders", bookingHandler.ListOrders)
}
