package handler

import (
	"spotshare/internal/delivery/http/response"
	"spotshare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the authenticated session.
type SessionHandler struct {
	session usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{session: session}
}

// Get returns the session state and the signed-in identity.
func (h *SessionHandler) Get(c echo.Context) error {
	return response.OK(c, toSessionResponse(h.session.State()))
}
