package db

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/localserve/marketplace-api/logger"
)

var DB *gorm.DB

func GetDB() *gorm.DB {
	return DB
}

// Init establishes the DB connection without running migrations.
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey,
// which is what closes the duplicate-email register race at the storage layer.
func Init() {
	log := logger.Get()

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using environment variables directly")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	conn, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	DB = conn
	log.Info("database connection established")
}
