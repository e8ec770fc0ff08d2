package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventloop-labs/event-booking-service/internal/api/http/handlers"
	"github.com/eventloop-labs/event-booking-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Categories     *handlers.CategoriesHandler
	Bookings       *handlers.BookingsHandler
	Notifications  *handlers.NotificationsHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	app.Get("/events", cfg.Events.List)
	app.Get("/events/:id", cfg.Events.Get)
	app.Get("/categories", cfg.Categories.List)
	app.Get("/categories/:id", cfg.Categories.Get)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	protected.Post("/bookings", cfg.Bookings.Create)
	protected.Get("/bookings", cfg.Bookings.List)
	protected.Post("/bookings/:id/cancel", cfg.Bookings.Cancel)
	protected.Get("/notifications", cfg.Notifications.List)
	protected.Post("/notifications/read", cfg.Notifications.MarkAllRead)
	protected.Post("/notifications/:id/read", cfg.Notifications.MarkRead)

	admin := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Post("/events", cfg.Events.Create)
	admin.Put("/events/:id", cfg.Events.Update)
	admin.Delete("/events/:id", cfg.Events.Delete)
	admin.Get("/events/:id/bookings", cfg.Events.ListBookings)
	admin.Get("/admin/analytics", cfg.Analytics.Timeline)
}
