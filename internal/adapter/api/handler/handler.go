package handler

import (
	"mobilicity/internal/domain/service"
	"mobilicity/internal/usecase"
)

var (
	authHandler    *AuthHandler
	adminHandler   *AdminHandler
	catalogHandler *CatalogHandler
	productHandler *ProductHandler
	bookingHandler *BookingHandler
	reportHandler  *ReportHandler
	paymentHandler *PaymentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	productUseCase *usecase.ProductUseCase,
	bookingUseCase *usecase.BookingUseCase,
	reportUseCase *usecase.ReportUseCase,
	settlementUseCase *usecase.SettlementUseCase,
	gateway *service.CardGatewayService,
) {
	authHandler = NewAuthHandler(authUseCase)
	adminHandler = NewAdminHandler(userUseCase, reportUseCase, productUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	productHandler = NewProductHandler(productUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	paymentHandler = NewPaymentHandler(settlementUseCase, gateway)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

// The auth middleware stores the verified caller email under this key.
const emailContextKey = "email"
