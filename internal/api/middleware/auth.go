package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jgmedellin/coffee-shop-api/internal/api/metrics"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

// Context keys under which the auth gate stores the caller identity.
const (
	CtxEmail = "email"
	CtxRole  = "role"
)

// Auth is the authentication gate. Requests without a Bearer credential pass
// through as anonymous; a present but invalid token short-circuits with 401.
// On success the caller email and role are injected into the echo context.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			email, role, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(CtxEmail, email)
			c.Set(CtxRole, string(role))
			return next(c)
		}
	}
}
