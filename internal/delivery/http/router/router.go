// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"adspace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	MediaHandler    *handler.MediaHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	mediaHandler    *handler.MediaHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		mediaHandler:    params.MediaHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.GET("/media", r.mediaHandler.SearchMedia)
	e.GET("/media/:id", r.mediaHandler.GetMedia)
	e.GET("/locations/:id", r.locationHandler.GetLocation)

	// Business-scoped management routes; identity comes from the path,
	// authentication is handled upstream at the gateway.
	businessGroup := e.Group("/businesses/:businessId")
	{
		businessGroup.POST("/locations", r.locationHandler.CreateLocation)
		businessGroup.GET("/locations", r.locationHandler.ListLocations)
		businessGroup.PUT("/locations/:id", r.locationHandler.UpdateLocation)
		businessGroup.DELETE("/locations/:id", r.locationHandler.DeleteLocation)

		businessGroup.POST("/media", r.mediaHandler.CreateMedia)
		businessGroup.PUT("/media/:id", r.mediaHandler.UpdateMedia)
		businessGroup.DELETE("/media/:id", r.mediaHandler.DeleteMedia)
	}
}
