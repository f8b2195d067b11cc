// Package handler contains the HTTP handlers of the local delivery.
package handler

import (
	"spotshare/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
