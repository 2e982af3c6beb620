package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/middleware"
)

// SetupCartRoutes configures cart routes
func SetupCartRoutes(app *fiber.App, issuer *auth.TokenIssuer) {
	group := app.Group("/cart", middleware.Protected(issuer))
	group.Get("/", controllers.GetCart)
	group.Post("/add", controllers.AddToCart)
	group.Put("/update/:id", controllers.UpdateCartItem)
	group.Delete("/remove/:id", controllers.RemoveFromCart)
	group.Delete("/clear", controllers.ClearCart)
}
