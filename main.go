package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/config"
	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/cron"
	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/redis"
	"github.com/localserve/marketplace-api/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	db.Init()
	redis.Init(cfg.Redis)

	issuer := auth.NewTokenIssuer(cfg.JWT)
	authController := controllers.NewAuthController(issuer, cfg.AdminKey)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK"})
	})

	routes.SetupAuthRoutes(app, authController, issuer)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app, issuer)
	routes.SetupCartRoutes(app, issuer)
	routes.SetupProviderRoutes(app, issuer)
	routes.SetupUserRoutes(app, issuer)
	routes.SetupAdminRoutes(app, issuer)

	cron.StartCronJobs(cfg)

	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}
