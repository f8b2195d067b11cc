package handler

import (
	"spotshare/internal/delivery/http/response"
	"spotshare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LocationHandler exposes the device location session.
type LocationHandler struct {
	location usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(location usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{location: location}
}

// Get returns the latest location state without touching the device.
func (h *LocationHandler) Get(c echo.Context) error {
	return response.OK(c, toLocationResponse(h.location.State()))
}

// Refresh performs a location request. Denied and failed outcomes are
// reported in the state, not as errors.
func (h *LocationHandler) Refresh(c echo.Context) error {
	state := h.location.RequestCurrentLocation(c.Request().Context())

	return response.OK(c, toLocationResponse(state))
}
