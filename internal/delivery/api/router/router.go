// Package router wires the HTTP routes of the API surface.
package router

import (
	"cordonnier/internal/delivery/api/middleware"
	"cordonnier/internal/delivery/api/router/handler"
	"cordonnier/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	PartnerHandler *handler.PartnerHandler
	PaymentHandler *handler.PaymentHandler
	ReviewHandler  *handler.ReviewHandler
	MediaHandler   *handler.MediaHandler
	StatsHandler   *handler.StatsHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes of the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	// Account routes.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/client", r.params.UserHandler.RegisterClient)
		authGroup.POST("/register/cobbler", r.params.UserHandler.RegisterCobbler)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
		authGroup.POST("/logout", r.params.UserHandler.Logout)
	}

	// Public order tracking, by reference. No authentication: the reference
	// is the capability.
	trackGroup := e.Group("/track")
	{
		trackGroup.GET("/:reference", r.params.OrderHandler.TrackOrder)
		trackGroup.GET("/:reference/qr", r.params.OrderHandler.TrackingQR)
	}

	// Payment provider webhooks. Raw body, verified by signature.
	e.POST("/webhooks/stripe", r.params.PaymentHandler.HandleWebhook)

	apiV1 := e.Group("/api/v1")

	// Catalog browsing is public; administrators additionally see inactive
	// entries when asked.
	servicesGroup := apiV1.Group("/services", auth.OptionalAuthenticate)
	{
		servicesGroup.GET("", r.params.CatalogHandler.ListServices)
		servicesGroup.GET("/:id", r.params.CatalogHandler.GetService)
	}

	// Order placement serves guests and logged-in clients alike.
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.params.OrderHandler.CreateOrder, auth.OptionalAuthenticate)
		ordersGroup.POST("/photos", r.params.OrderHandler.UploadPhoto, auth.OptionalAuthenticate)
		ordersGroup.GET("", r.params.OrderHandler.ListMyOrders, auth.Authenticate)
		ordersGroup.GET("/:id", r.params.OrderHandler.GetOrder, auth.Authenticate)
		ordersGroup.PATCH("/:id/status", r.params.OrderHandler.UpdateStatus, auth.Authenticate)
	}

	// Checkout follows the same guest-or-client rule as order placement.
	paymentsGroup := apiV1.Group("/payments")
	{
		paymentsGroup.POST("/checkout", r.params.PaymentHandler.StartCheckout, auth.OptionalAuthenticate)
		paymentsGroup.GET("/confirm/:sessionId", r.params.PaymentHandler.ConfirmCheckout)
	}

	// Public cobbler reputation.
	cobblersGroup := apiV1.Group("/cobblers")
	{
		cobblersGroup.GET("", r.params.PartnerHandler.ListPublicCobblers)
		cobblersGroup.GET("/:id/reviews", r.params.ReviewHandler.ListCobblerReviews)
		cobblersGroup.GET("/:id/rating", r.params.ReviewHandler.GetCobblerRating)
	}

	// Public site media.
	mediaGroup := apiV1.Group("/media")
	{
		mediaGroup.GET("/content/:id", r.params.MediaHandler.GetMediaContent)
		mediaGroup.GET("/:category", r.params.MediaHandler.ListMedia)
	}

	// Authenticated account self-service.
	profileGroup := apiV1.Group("/profile", auth.Authenticate)
	{
		profileGroup.GET("", r.params.UserHandler.GetProfile)
		profileGroup.PATCH("", r.params.UserHandler.UpdateProfile)
	}

	// Platform settings (delivery prices, delays) for checkout surfaces.
	apiV1.GET("/settings", r.params.StatsHandler.GetSettings, auth.Authenticate)

	reviewsGroup := apiV1.Group("/reviews", auth.Authenticate)
	{
		reviewsGroup.POST("", r.params.ReviewHandler.CreateReview)
	}

	devicesGroup := apiV1.Group("/devices", auth.Authenticate)
	{
		devicesGroup.POST("", r.params.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.params.DeviceHandler.ListDevices)
		devicesGroup.DELETE("/:id", r.params.DeviceHandler.RemoveDevice)
	}

	// Cobbler self-service.
	partnerGroup := apiV1.Group("/partner", auth.Authenticate, auth.RequireRole(entity.RoleCobbler))
	{
		partnerGroup.PATCH("/workshop", r.params.PartnerHandler.UpdateWorkshop)
		partnerGroup.PUT("/documents/:kind", r.params.PartnerHandler.UploadDocument)
		partnerGroup.POST("/terms", r.params.PartnerHandler.SignTerms)
		partnerGroup.POST("/onboarding", r.params.PaymentHandler.StartOnboarding)
		partnerGroup.GET("/onboarding/status", r.params.PaymentHandler.OnboardingStatus)
	}

	// Administration.
	adminGroup := apiV1.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/cobblers/pending", r.params.PartnerHandler.ListPendingCobblers)
		adminGroup.GET("/cobblers", r.params.PartnerHandler.ListCobblers)
		adminGroup.GET("/cobblers/:id", r.params.PartnerHandler.GetCobbler)
		adminGroup.POST("/cobblers/:id/approve", r.params.PartnerHandler.ApproveCobbler)
		adminGroup.POST("/cobblers/:id/reject", r.params.PartnerHandler.RejectCobbler)
		adminGroup.GET("/cobblers/:id/documents/:kind", r.params.PartnerHandler.DownloadDocument)

		adminGroup.GET("/orders", r.params.OrderHandler.ListAllOrders)

		adminGroup.POST("/services", r.params.CatalogHandler.CreateService)
		adminGroup.PUT("/services/:id", r.params.CatalogHandler.UpdateService)
		adminGroup.DELETE("/services/:id", r.params.CatalogHandler.DeleteService)

		adminGroup.PUT("/media/:category", r.params.MediaHandler.UploadMedia)
		adminGroup.DELETE("/media/:id", r.params.MediaHandler.DeleteMedia)

		adminGroup.GET("/dashboard", r.params.StatsHandler.Dashboard)
		adminGroup.GET("/reports/cobblers", r.params.StatsHandler.CobblerReport)
		adminGroup.GET("/settings", r.params.StatsHandler.GetSettings)
		adminGroup.PATCH("/settings", r.params.StatsHandler.UpdateSettings)
	}
}
