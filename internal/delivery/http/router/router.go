// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"packline/internal/delivery/http/middleware"
	"packline/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BundleHandler  *handler.BundleHandler
	ScanHandler    *handler.ScanHandler
	StreamHandler  *handler.StreamHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	bundleHandler  *handler.BundleHandler
	scanHandler    *handler.ScanHandler
	streamHandler  *handler.StreamHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		bundleHandler:  params.BundleHandler,
		scanHandler:    params.ScanHandler,
		streamHandler:  params.StreamHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Bundle routes: every caller belongs to exactly one organization,
	// resolved from the token, so all routes require authentication.
	bundleGroup := e.Group("/bundles")
	bundleGroup.Use(r.authMiddleware.Authenticate)
	{
		// Bundle setup is a supervisor action; scanning terminals only scan.
		bundleGroup.POST("", r.bundleHandler.CreateBundle, r.authMiddleware.RequireRole("supervisor"))
		bundleGroup.GET("/:id", r.bundleHandler.GetBundle)
		bundleGroup.GET("/:id/units", r.bundleHandler.ListBundleUnits)
		bundleGroup.POST("/:id/scan", r.scanHandler.Scan)
		bundleGroup.GET("/:id/stream", r.streamHandler.Stream)
	}

	// Unit routes cover inbound receiving and label printing.
	unitGroup := e.Group("/units")
	unitGroup.Use(r.authMiddleware.Authenticate)
	{
		unitGroup.POST("", r.bundleHandler.RegisterUnit)
		unitGroup.GET("/:id/label", r.bundleHandler.UnitLabel)
	}
}
