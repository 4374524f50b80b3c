package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jgmedellin/coffee-shop-api/internal/api/middleware"
	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// caller extracts the identity injected by the auth gate. Both values are
// empty for anonymous requests; the policy table guarantees protected
// handlers only run with an identity present.
func caller(c echo.Context) (string, domain.Role) {
	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return email, domain.Role(role)
}
