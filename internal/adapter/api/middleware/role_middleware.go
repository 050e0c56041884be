package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mobilicity/internal/domain/repository"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// Require is the second guard stage: the caller's role is re-read from
// the identity store on every request rather than trusted from the token,
// so an admin demoting a user takes effect immediately at the cost of one
// extra lookup per protected request.
func (m *RoleMiddleware) Require(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get("email").(string)
			if !ok || email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			user, err := m.userRepo.GetByEmail(c.Request().Context(), email)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}

			if user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}

			return next(c)
		}
	}
}
