package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/usecase"
	"mobilicity/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required"`
	Method string `json:"method" validate:"required,oneof=password google"`
	Role   string `json:"role" validate:"omitempty,oneof=buyer seller"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register handles POST /users. State conflicts travel in the 200 body
// as {acknowledged, message}, matching what the frontend expects.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:  req.Email,
		Name:   req.Name,
		Method: req.Method,
		Role:   req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, response.Ack{
		Acknowledged: result.Acknowledged,
		Message:      result.Message,
	})
}

// IssueToken handles GET /jwt?email=. Unknown emails get a 403 carrying
// the empty-token marker rather than an error body.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	token, err := h.authUseCase.IssueToken(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusForbidden, tokenResponse{AccessToken: ""})
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}

func (h *AuthHandler) CheckAdmin(c echo.Context) error {
	isAdmin, err := h.authUseCase.HasRole(c.Request().Context(), c.Param("email"), entity.RoleAdmin)
	if err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"isAdmin": isAdmin})
}

func (h *AuthHandler) CheckSeller(c echo.Context) error {
	isSeller, err := h.authUseCase.HasRole(c.Request().Context(), c.Param("email"), entity.RoleSeller)
	if err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"isSeller": isSeller})
}

func (h *AuthHandler) CheckBuyer(c echo.Context) error {
	isBuyer, err := h.authUseCase.HasRole(c.Request().Context(), c.Param("email"), entity.RoleBuyer)
	if err != nil {
		return response.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"isBuyer": isBuyer})
}
