package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
)

// SetupAdminRoutes configures the admin routes
func SetupAdminRoutes(app *fiber.App, issuer *auth.TokenIssuer) {
	group := app.Group("/admin",
		middleware.Protected(issuer),
		middleware.RequireRole(models.RoleAdmin))

	group.Get("/stats", controllers.GetAdminStats)
	group.Get("/users", controllers.GetAllUsers)
	group.Put("/providers/:id/verify", controllers.VerifyProvider)
	group.Get("/bookings", controllers.GetAllBookings)
}
