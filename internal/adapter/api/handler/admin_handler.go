package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/usecase"
	"mobilicity/pkg/response"
	"mobilicity/pkg/utils"
)

type AdminHandler struct {
	userUseCase    *usecase.UserUseCase
	reportUseCase  *usecase.ReportUseCase
	productUseCase *usecase.ProductUseCase
}

func NewAdminHandler(
	userUseCase *usecase.UserUseCase,
	reportUseCase *usecase.ReportUseCase,
	productUseCase *usecase.ProductUseCase,
) *AdminHandler {
	return &AdminHandler{
		userUseCase:    userUseCase,
		reportUseCase:  reportUseCase,
		productUseCase: productUseCase,
	}
}

func (h *AdminHandler) ListBuyers(c echo.Context) error {
	return h.listByRole(c, entity.RoleBuyer)
}

func (h *AdminHandler) ListSellers(c echo.Context) error {
	return h.listByRole(c, entity.RoleSeller)
}

func (h *AdminHandler) listByRole(c echo.Context, role string) error {
	params := utils.GetPaginationParams(c)

	users, _, err := h.userUseCase.ListByRole(c.Request().Context(), role, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	if users == nil {
		users = []*entity.User{}
	}

	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.userUseCase.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, response.Ack{Acknowledged: true, Message: "User deleted"})
}

type verifySellerRequest struct {
	Verified bool `json:"verified"`
}

func (h *AdminHandler) VerifySeller(c echo.Context) error {
	var req verifySellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userUseCase.SetSellerVerified(c.Request().Context(), c.Param("id"), req.Verified)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) ListReports(c echo.Context) error {
	reports, err := h.reportUseCase.ListReports(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	if reports == nil {
		reports = []*entity.Report{}
	}
	return c.JSON(http.StatusOK, reports)
}

// RemoveProduct takes a reported product off the catalog.
func (h *AdminHandler) RemoveProduct(c echo.Context) error {
	if err := h.productUseCase.RemoveListing(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, response.Ack{Acknowledged: true, Message: "Product removed"})
}
