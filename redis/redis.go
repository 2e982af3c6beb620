package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/config"
	"github.com/localserve/marketplace-api/logger"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects the process-wide client. The cache is an optimization only;
// a missing redis is logged and callers fall through to the database.
func Init(cfg config.RedisConfig) {
	Client = redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		logger.Get().Warn("redis unavailable, category cache disabled", zap.Error(err))
		Client = nil
		return
	}
	logger.Get().Info("connected to redis")
}
