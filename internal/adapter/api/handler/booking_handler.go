package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/usecase"
	"mobilicity/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerEmail := c.Get(emailContextKey).(string)

	result, err := h.bookingUseCase.CreateBooking(c.Request().Context(), buyerEmail, usecase.CreateBookingInput{
		ProductID: req.ProductID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, response.Ack{
		Acknowledged: result.Acknowledged,
		Message:      result.Message,
	})
}

func (h *BookingHandler) BookingsCheck(c echo.Context) error {
	productID := c.QueryParam("productId")
	if productID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId query parameter is required")
	}

	buyerEmail := c.Get(emailContextKey).(string)

	booked, err := h.bookingUseCase.HasBooking(c.Request().Context(), buyerEmail, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"booked": booked})
}

func (h *BookingHandler) ListOrders(c echo.Context) error {
	buyerEmail := c.Get(emailContextKey).(string)

	orders, err := h.bookingUseCase.ListOrders(c.Request().Context(), buyerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	if orders == nil {
		orders = []*entity.Booking{}
	}

	return c.JSON(http.StatusOK, orders)
}
