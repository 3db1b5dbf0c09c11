// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearnow/config"
	"nearnow/internal/delivery/http/middleware"
	"nearnow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	LocationHandler  *handler.LocationHandler
	DiscoveryHandler *handler.DiscoveryHandler
	MatchHandler     *handler.MatchHandler
	PresenceHandler  *handler.PresenceHandler
	ChatHandler      *handler.ChatHandler
	DeviceHandler    *handler.DeviceHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg              *config.Config
	locationHandler  *handler.LocationHandler
	discoveryHandler *handler.DiscoveryHandler
	matchHandler     *handler.MatchHandler
	presenceHandler  *handler.PresenceHandler
	chatHandler      *handler.ChatHandler
	deviceHandler    *handler.DeviceHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:              params.Config,
		locationHandler:  params.LocationHandler,
		discoveryHandler: params.DiscoveryHandler,
		matchHandler:     params.MatchHandler,
		presenceHandler:  params.PresenceHandler,
		chatHandler:      params.ChatHandler,
		deviceHandler:    params.DeviceHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires authentication
	api := e.Group("", r.authMiddleware.Authenticate)

	locationGroup := api.Group("/location")
	{
		locationGroup.PUT("", r.locationHandler.ReportLocation)
		locationGroup.GET("", r.locationHandler.GetLocation)
		locationGroup.POST("/offline", r.locationHandler.MarkOffline)
	}

	api.GET("/discovery/nearby", r.discoveryHandler.FindNearby)

	api.POST("/swipes", r.matchHandler.Swipe)
	api.GET("/swipes/stats", r.matchHandler.GetSwipeStats)
	api.GET("/swipes/:id/liked", r.matchHandler.HasLiked)

	matchGroup := api.Group("/matches")
	{
		matchGroup.GET("", r.matchHandler.ListMatches)
		matchGroup.DELETE("/:id", r.matchHandler.Unmatch)

		matchGroup.POST("/:id/messages", r.chatHandler.SendMessage)
		matchGroup.POST("/:id/messages/image", r.chatHandler.SendImage)
		matchGroup.POST("/:id/messages/location", r.chatHandler.SendLocation)
		matchGroup.GET("/:id/messages", r.chatHandler.History)
		matchGroup.POST("/:id/read", r.chatHandler.MarkRead)
		matchGroup.POST("/:id/typing", r.chatHandler.SendTyping)
		matchGroup.GET("/:id/stream", r.chatHandler.Stream)
	}

	presenceGroup := api.Group("/presence")
	{
		presenceGroup.POST("/heartbeat", r.presenceHandler.Heartbeat)
		presenceGroup.POST("/offline", r.presenceHandler.SetOffline)
		presenceGroup.GET("", r.presenceHandler.GetPresence)
	}

	deviceGroup := api.Group("/devices")
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// Test routes for middleware validation, enabled per environment
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
