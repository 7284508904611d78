package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	"land-marketplace-service/internal/config"
	redisclient "land-marketplace-service/pkg/redis"
)

// NewRedisClient creates a new Redis client with configuration.
// It returns nil, nil when Redis is disabled.
func NewRedisClient(cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	if !cfg.Redis.Enabled {
		l.Info("redis disabled, caching off and rate limiting is per instance")
		return nil, nil
	}

	redisConfig := redisclient.Config{
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		MaxRetries:  cfg.Redis.MaxRetries,
		PoolSize:    cfg.Redis.PoolSize,
		MinIdleConn: cfg.Redis.MinIdleConn,
	}

	rdb, err := redisclient.NewClient(redisConfig, l)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
