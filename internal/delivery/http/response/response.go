// Package response builds the JSON envelope every endpoint answers with.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope. Exactly one of Data and Error is set.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// Meta describes list payloads.
type Meta struct {
	Count int `json:"count"`
}

// ErrorInfo carries the domain error code, e.g. "LISTING_NOT_FOUND".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// OK writes a 200 envelope around data.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    http.StatusOK,
		Message: http.StatusText(http.StatusOK),
		Data:    data,
	})
}

// List writes a 200 envelope around a slice and reports its length.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    http.StatusOK,
		Message: http.StatusText(http.StatusOK),
		Data:    items,
		Meta:    &Meta{Count: len(items)},
	})
}

// Error writes a failure envelope. An empty message falls back to the status text.
func Error(c echo.Context, status int, code, message, details string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	return c.JSON(status, Response{
		Code:    status,
		Message: message,
		Error:   &ErrorInfo{Code: code, Details: details},
	})
}
