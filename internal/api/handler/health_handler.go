package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ReadinessCheck reports whether a named dependency is reachable.
type ReadinessCheck func(ctx context.Context) error

const readinessTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checks map[string]ReadinessCheck
}

func NewHealthHandler(checks map[string]ReadinessCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Live reports process liveness. It never touches downstream dependencies.
func (h *HealthHandler) Live(c echo.Context) error {
	return respond(c, http.StatusOK, "ok", nil)
}

// Ready verifies every registered dependency. Any failing check turns the
// probe into a 503 and names the dependency in the payload.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		return respond(c, http.StatusServiceUnavailable, "not ready", status)
	}
	return respond(c, http.StatusOK, "ready", status)
}
