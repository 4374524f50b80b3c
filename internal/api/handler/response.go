package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response wrapper carried by every endpoint:
// a numeric code, a human-readable message, and an optional payload.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Code: status, Message: message, Data: data})
}
