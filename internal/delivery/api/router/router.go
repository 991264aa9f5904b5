// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foundmoney/config"
	"foundmoney/internal/delivery/api/middleware"
	"foundmoney/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler     *handler.SearchHandler
	EmailHandler      *handler.EmailHandler
	FormHandler       *handler.FormHandler
	MoneyFoundHandler *handler.MoneyFoundHandler
	DeviceHandler     *handler.DeviceHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	WebhookHandler    *handler.WebhookHandler
	HealthHandler     *handler.HealthHandler
	TestHandler       *handler.TestHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	WebhookMiddleware   *middleware.WebhookSignatureMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router RouterParams

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	r := router(params)

	return &r
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.HealthHandler.Check)

	// Routes authenticated by something other than a bearer token are
	// limited per address.
	e.GET("/email/callback", r.EmailHandler.Callback, r.RateLimitMiddleware.Limit)
	e.POST("/webhooks/subscription", r.WebhookHandler.Subscription, r.RateLimitMiddleware.Limit, r.WebhookMiddleware.Verify)

	// Everything else requires a bearer token and is limited per user.
	authed := []echo.MiddlewareFunc{r.AuthMiddleware.Authenticate, r.RateLimitMiddleware.Limit}

	searchGroup := e.Group("/search", authed...)
	{
		searchGroup.POST("/all", r.SearchHandler.SearchAll)
		searchGroup.POST("/class-actions", r.SearchHandler.SearchClassActions)
		searchGroup.POST("/unclaimed-property", r.SearchHandler.SearchUnclaimedProperty)
		searchGroup.GET("/jurisdictions", r.SearchHandler.Jurisdictions)
	}

	emailGroup := e.Group("/email", authed...)
	{
		emailGroup.POST("/connect", r.EmailHandler.Connect)
		emailGroup.POST("/scan", r.EmailHandler.Scan)
	}

	formsGroup := e.Group("/forms", authed...)
	{
		formsGroup.POST("/auto-fill", r.FormHandler.AutoFill)
		formsGroup.POST("/generate-pdf", r.FormHandler.GeneratePDF)
		formsGroup.GET("/:id", r.FormHandler.GetForm)
	}

	moneyFoundGroup := e.Group("/money-found", authed...)
	{
		moneyFoundGroup.GET("", r.MoneyFoundHandler.List)
		moneyFoundGroup.PATCH("/:id/status", r.MoneyFoundHandler.UpdateStatus)
	}

	e.POST("/devices", r.DeviceHandler.RegisterDevice, authed...)
	e.POST("/analytics/track", r.AnalyticsHandler.Track, authed...)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.Config.TestRoutes == nil || !r.Config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.POST("/token", r.TestHandler.IssueToken)
	testGroup.GET("/auth", r.TestHandler.TestAuthMiddleware, r.AuthMiddleware.Authenticate)
}
