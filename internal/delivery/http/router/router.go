// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"spotlight/internal/delivery/http/middleware"
	"spotlight/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler    *handler.ProfileHandler
	AuctionHandler    *handler.AuctionHandler
	EngagementHandler *handler.EngagementHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler    *handler.ProfileHandler
	auctionHandler    *handler.AuctionHandler
	engagementHandler *handler.EngagementHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:    params.ProfileHandler,
		auctionHandler:    params.AuctionHandler,
		engagementHandler: params.EngagementHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public read surface
	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("/current", r.profileHandler.GetCurrent)
	}

	auctionGroup := e.Group("/auction")
	{
		auctionGroup.GET("/current", r.auctionHandler.GetCurrent)
	}

	// Engagement pings are anonymous and fire-and-forget
	e.POST("/engagement/:metric", r.engagementHandler.Record)

	// Routes that require authentication
	profileGroup.PUT("/content", r.profileHandler.SetContent, r.authMiddleware.Authenticate)
	auctionGroup.POST("/bid", r.auctionHandler.PlaceBid, r.authMiddleware.Authenticate)
}
