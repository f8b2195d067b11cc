// Package router contains routing for the local HTTP delivery.
package router

import (
	"spotshare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers, injected by Fx.
type RouterParams struct {
	fx.In

	ListingHandler  *handler.ListingHandler
	LocationHandler *handler.LocationHandler
	SessionHandler  *handler.SessionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler  *handler.ListingHandler
	locationHandler *handler.LocationHandler
	sessionHandler  *handler.SessionHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler:  params.ListingHandler,
		locationHandler: params.LocationHandler,
		sessionHandler:  params.SessionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	listings := v1.Group("/listings")
	{
		listings.GET("", r.listingHandler.Search)
		listings.GET("/map", r.listingHandler.Map)
		listings.GET("/scan", r.listingHandler.Scan)
		listings.GET("/:id", r.listingHandler.Get)
		listings.GET("/:id/qr", r.listingHandler.ShareCode)
	}

	location := v1.Group("/location")
	{
		location.GET("", r.locationHandler.Get)
		location.POST("/refresh", r.locationHandler.Refresh)
	}

	v1.GET("/session", r.sessionHandler.Get)
}
