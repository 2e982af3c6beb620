package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ac *controllers.AuthController, issuer *auth.TokenIssuer) {
	group := app.Group("/auth")

	// Public routes
	group.Post("/register", ac.Register)
	group.Post("/login", ac.Login)

	// Protected routes
	group.Get("/me", middleware.Protected(issuer), ac.Me)
}
