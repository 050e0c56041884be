package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// TokenVerifier validates a bearer token and returns the email it asserts.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate is the first guard stage. A missing Authorization header is
// unauthorized (401); a malformed, invalid or expired token is forbidden
// (403). On success the verified email is stored in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid authorization format")
		}

		email, err := m.verifier.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid or expired token")
		}

		c.Set("email", email)

		return next(c)
	}
}
