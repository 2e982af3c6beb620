package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/controllers"
)

// SetupServiceRoutes configures the public service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	group := app.Group("/services")
	group.Get("/", controllers.GetAllServices)
	group.Get("/categories/list", controllers.GetCategories)
	group.Get("/:id", controllers.GetService)
}
