package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/usecase"
	"mobilicity/pkg/response"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type fileReportRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Reason    string `json:"reason"`
}

func (h *ReportHandler) ReportToAdmin(c echo.Context) error {
	var req fileReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerEmail := c.Get(emailContextKey).(string)

	result, err := h.reportUseCase.FileReport(c.Request().Context(), buyerEmail, usecase.FileReportInput{
		ProductID: req.ProductID,
		Reason:    req.Reason,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, response.Ack{
		Acknowledged: result.Acknowledged,
		Message:      result.Message,
	})
}

func (h *ReportHandler) ReportsCheck(c echo.Context) error {
	productID := c.QueryParam("productId")
	if productID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId query parameter is required")
	}

	buyerEmail := c.Get(emailContextKey).(string)

	reported, err := h.reportUseCase.HasReported(c.Request().Context(), buyerEmail, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"reported": reported})
}
