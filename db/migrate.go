package db

import (
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/models"
)

// Migrate runs AutoMigrate for every model. Only called explicitly, never as
// part of Init.
func Migrate() {
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Service{},
		&models.Booking{},
		&models.CartItem{},
	)
	if err != nil {
		logger.Get().Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Get().Info("migrations applied")
}
