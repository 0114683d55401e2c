package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leadsfynder/leadsfynder-api/internal/api/http/handlers"
	"github.com/leadsfynder/leadsfynder-api/internal/auth"
	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Leads     *handlers.LeadsHandler
	Campaigns *handlers.CampaignsHandler
	Analytics *handlers.AnalyticsHandler
	Health    *handlers.HealthHandler
}

// RegisterRoutes mounts the public and protected API surface.
func RegisterRoutes(app *fiber.App, h Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api")

	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/login", h.Auth.Login)

	api.Get("/health", h.Health.Health)
	api.Get("/health/db", h.Health.HealthDB)

	protected := api.Group("", authMiddleware.Handle)

	leads := protected.Group("/leads")
	leads.Get("/", h.Leads.List)
	leads.Post("/", h.Leads.Create)
	leads.Get("/:id", h.Leads.Get)
	leads.Put("/:id", h.Leads.Update)
	leads.Delete("/:id", h.Leads.Delete)

	campaigns := protected.Group("/campaigns")
	campaigns.Get("/email", h.Campaigns.ListEmail)
	campaigns.Post("/email", h.Campaigns.CreateEmail)
	campaigns.Put("/email/:id", h.Campaigns.UpdateEmail)
	campaigns.Get("/whatsapp", h.Campaigns.ListWhatsApp)
	campaigns.Post("/whatsapp", h.Campaigns.CreateWhatsApp)
	campaigns.Get("/smtp", h.Campaigns.ListSMTP)
	campaigns.Post("/smtp", h.Campaigns.CreateSMTP)
	campaigns.Post("/smtp/:id/verify", h.Campaigns.VerifySMTP)

	analytics := protected.Group("/analytics")
	analytics.Get("/dashboard", h.Analytics.Dashboard)
	analytics.Get("/activity", h.Analytics.Activity)

	admin := protected.Group("/admin", auth.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin))
	admin.Post("/reconcile", h.Auth.Reconcile)
}
