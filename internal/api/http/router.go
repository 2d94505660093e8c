package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hall-complaints/internal/api/http/handlers"
	"github.com/spec-kit/hall-complaints/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Complaints        *handlers.ComplaintsHandler
	Admin             *handlers.AdminHandler
	Auth              *handlers.AuthHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/complaints", cfg.Complaints.Submit)
	app.Get("/complaints/:id", cfg.Complaints.Track)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	admin := app.Group("/admin", cfg.SessionMiddleware.Handle)
	admin.Get("/complaints", cfg.Admin.ListComplaints)
	admin.Patch("/complaints/:id/status", cfg.Admin.UpdateStatus)
	admin.Delete("/complaints/:id", cfg.Admin.DeleteComplaint)
}
