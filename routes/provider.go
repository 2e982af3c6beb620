package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/controllers/provider"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
)

// SetupProviderRoutes configures the provider management routes
func SetupProviderRoutes(app *fiber.App, issuer *auth.TokenIssuer) {
	group := app.Group("/provider",
		middleware.Protected(issuer),
		middleware.RequireRole(models.RoleProvider))

	group.Get("/services", provider.GetMyServices)
	group.Post("/services", provider.CreateService)
	group.Put("/services/:id", provider.UpdateService)
	group.Delete("/services/:id", provider.DeleteService)

	group.Get("/bookings", provider.GetBookings)
	group.Put("/bookings/:id/status", provider.UpdateBookingStatus)

	group.Get("/stats", provider.GetDashboardStats)
}
