package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jgmedellin/coffee-shop-api/internal/api/metrics"
	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// Decision is the outcome of evaluating a request against the policy table.
type Decision int

const (
	Allow Decision = iota
	Unauthorized
	Forbidden
)

// Rule maps (method, path pattern) to an allowed role set. A nil role set
// marks the route public. Pattern segments: "*" matches exactly one path
// segment, a trailing "**" matches any remainder.
type Rule struct {
	Method  string
	Pattern string
	Roles   []domain.Role
}

// Table is an ordered rule list evaluated top to bottom, first match wins.
// It is deliberately independent of the router's own matcher so the policy
// is testable without HTTP.
type Table []Rule

// Evaluate resolves the access decision for a request. Unmatched requests
// are allowed for authenticated callers and rejected for anonymous ones.
func (t Table) Evaluate(method, path string, role domain.Role, authenticated bool) Decision {
	for _, r := range t {
		if r.Method != method || !matchPath(r.Pattern, path) {
			continue
		}
		if r.Roles == nil {
			return Allow
		}
		if !authenticated {
			return Unauthorized
		}
		for _, allowed := range r.Roles {
			if allowed == role {
				return Allow
			}
		}
		return Forbidden
	}
	if authenticated {
		return Allow
	}
	return Unauthorized
}

func matchPath(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range ps {
		if seg == "**" {
			return true
		}
		if i >= len(xs) {
			return false
		}
		if seg == "*" {
			continue
		}
		if seg != xs[i] {
			return false
		}
	}
	return len(ps) == len(xs)
}

var (
	anyAuthenticated = []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}
	elevated         = []domain.Role{domain.RoleAdmin, domain.RoleSuper}
	superOnly        = []domain.Role{domain.RoleSuper}
	userOnly         = []domain.Role{domain.RoleUser}
)

// DefaultTable is the route policy of the API. Ordering matters: specific
// paths (changeRole, orders/history) come before their wildcard siblings.
var DefaultTable = Table{
	{Method: http.MethodPost, Pattern: "/api/v1/users/register"},
	{Method: http.MethodPost, Pattern: "/api/v1/users/login"},
	{Method: http.MethodGet, Pattern: "/swagger/**"},
	{Method: http.MethodGet, Pattern: "/health"},
	{Method: http.MethodGet, Pattern: "/health/ready"},
	{Method: http.MethodGet, Pattern: "/metrics"},

	{Method: http.MethodPatch, Pattern: "/api/v1/users/changeRole", Roles: superOnly},
	{Method: http.MethodGet, Pattern: "/api/v1/users", Roles: elevated},
	{Method: http.MethodGet, Pattern: "/api/v1/users/*", Roles: anyAuthenticated},
	{Method: http.MethodDelete, Pattern: "/api/v1/users/*", Roles: superOnly},
	{Method: http.MethodPut, Pattern: "/api/v1/users/*", Roles: anyAuthenticated},

	{Method: http.MethodPost, Pattern: "/api/v1/products", Roles: elevated},
	{Method: http.MethodGet, Pattern: "/api/v1/products", Roles: anyAuthenticated},
	{Method: http.MethodGet, Pattern: "/api/v1/products/*", Roles: anyAuthenticated},
	{Method: http.MethodPatch, Pattern: "/api/v1/products/*", Roles: elevated},
	{Method: http.MethodDelete, Pattern: "/api/v1/products/*", Roles: superOnly},

	// Order creation is USER-only: elevated roles are explicitly forbidden
	// from placing orders.
	{Method: http.MethodPost, Pattern: "/api/v1/orders", Roles: userOnly},
	{Method: http.MethodGet, Pattern: "/api/v1/orders/history", Roles: anyAuthenticated},
	{Method: http.MethodGet, Pattern: "/api/v1/orders", Roles: elevated},
	{Method: http.MethodGet, Pattern: "/api/v1/orders/*", Roles: anyAuthenticated},
	{Method: http.MethodPatch, Pattern: "/api/v1/orders/*", Roles: elevated},
	{Method: http.MethodDelete, Pattern: "/api/v1/orders/*", Roles: superOnly},
}

// Policy enforces the table after the auth gate has run.
func Policy(table Table) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(CtxEmail).(string)
			role, _ := c.Get(CtxRole).(string)

			switch table.Evaluate(c.Request().Method, c.Request().URL.Path, domain.Role(role), email != "") {
			case Unauthorized:
				metrics.AuthRejectedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			case Forbidden:
				metrics.AuthRejectedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to access this resource")
			}
			return next(c)
		}
	}
}
