package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jgmedellin/coffee-shop-api/internal/api/handler"
	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors with request context.
//   - Renders every failure in the standard envelope {code, message, data}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.Envelope{Code: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Duplicates are
	// rendered as 400, matching the public contract.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User does not exist."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials."
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role."
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to access this resource"
	case errors.Is(err, domain.ErrDuplicateNames),
		errors.Is(err, domain.ErrProductExists),
		errors.Is(err, domain.ErrNoUsableProducts),
		errors.Is(err, domain.ErrOrderCustomer),
		errors.Is(err, domain.ErrInvalidOrderState):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, domain.ErrNoOrders):
		return http.StatusNotFound, "No orders found"
	}

	// Unexpected error: log the cause, surface the message without a trace.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, err.Error()
}
