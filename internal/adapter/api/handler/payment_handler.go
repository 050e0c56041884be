package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/domain/service"
	"mobilicity/internal/usecase"
	"mobilicity/pkg/response"
)

type PaymentHandler struct {
	settlementUseCase *usecase.SettlementUseCase
	gateway           *service.CardGatewayService
}

func NewPaymentHandler(settlementUseCase *usecase.SettlementUseCase, gateway *service.CardGatewayService) *PaymentHandler {
	return &PaymentHandler{
		settlementUseCase: settlementUseCase,
		gateway:           gateway,
	}
}

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent prepares a client-side charge with the external
// card gateway. The actual settlement arrives later via Settle.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	intent, err := h.gateway.CreateIntent(c.Request().Context(), req.Price, "usd")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create payment intent")
	}

	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: intent.ClientSecret})
}

type settleRequest struct {
	BookingID     string  `json:"booking_id" validate:"required"`
	ProductID     string  `json:"product_id" validate:"required"`
	BuyerEmail    string  `json:"buyer_email" validate:"required,email"`
	TransactionID string  `json:"transaction_id"`
	Price         float64 `json:"price" validate:"required,gt=0"`
}

// Settle handles POST /payments: record the payment and finalize the sale.
func (h *PaymentHandler) Settle(c echo.Context) error {
	var req settleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.settlementUseCase.Settle(c.Request().Context(), usecase.SettleInput{
		BookingID:     req.BookingID,
		ProductID:     req.ProductID,
		BuyerEmail:    req.BuyerEmail,
		TransactionID: req.TransactionID,
		Price:         req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, payment)
}
