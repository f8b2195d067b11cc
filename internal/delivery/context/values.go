// Package context carries request-scoped values from the HTTP layer into use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

const echoRequestIDKey = "spotshare.request_id"

type (
	requestIDKey struct{}
	loggerKey    struct{}
)

// BindRequest stores the request ID on the echo context and returns a request
// context carrying the ID and a logger tagged with it.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) context.Context {
	c.Set(echoRequestIDKey, requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey{}, requestID)

	return context.WithValue(ctx, loggerKey{}, logger.With(slog.String("request_id", requestID)))
}

// RequestID returns the ID bound by BindRequest, or "" outside a request.
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// RequestIDFrom returns the request ID carried by ctx.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// GetLoggerOrDefault returns the request logger, or fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
