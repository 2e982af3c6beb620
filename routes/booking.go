package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/middleware"
)

// SetupBookingRoutes configures customer booking routes
func SetupBookingRoutes(app *fiber.App, issuer *auth.TokenIssuer) {
	group := app.Group("/bookings", middleware.Protected(issuer))
	group.Post("/", controllers.CreateBooking)
	group.Get("/my-bookings", controllers.GetMyBookings)
	group.Get("/:id", controllers.GetBooking)
	group.Put("/:id/status", controllers.UpdateBookingStatus)
}
