package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/middleware"
)

// SetupUserRoutes configures the profile routes
func SetupUserRoutes(app *fiber.App, issuer *auth.TokenIssuer) {
	group := app.Group("/user", middleware.Protected(issuer))
	group.Get("/profile", controllers.GetProfile)
	group.Put("/profile", controllers.UpdateProfile)
	group.Post("/profile/picture", controllers.UpdateProfilePicture)
}
