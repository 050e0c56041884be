package router

import (
	"github.com/labstack/echo/v4"

	"mobilicity/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e)
	SetupCatalogRouter(e)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupSellerRouter(e, authMiddleware, roleMiddleware)
	SetupBuyerRouter(e, authMiddleware, roleMiddleware)
	SetupPaymentRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
