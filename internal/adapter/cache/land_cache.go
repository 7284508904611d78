package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"land-marketplace-service/internal/domain/land"
)

// LandCache defines the interface for land caching operations.
type LandCache interface {
	// Get retrieves a land from cache by ID.
	// Returns nil if the land is not cached.
	Get(ctx context.Context, id int64) (*land.Land, error)

	// Set stores a land with the configured TTL.
	Set(ctx context.Context, l *land.Land) error

	// Delete removes a land from cache by ID.
	Delete(ctx context.Context, id int64) error
}

// RedisLandCache implements LandCache using Redis as the backing store.
type RedisLandCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisLandCache creates a new Redis-backed land cache.
func NewRedisLandCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisLandCache {
	return &RedisLandCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Key returns the Redis key for a land ID.
func Key(id int64) string {
	return fmt.Sprintf("land:%d", id)
}

// Get retrieves a land from Redis.
func (c *RedisLandCache) Get(ctx context.Context, id int64) (*land.Land, error) {
	data, err := c.client.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.Debug("cache miss", zap.Int64("land_id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int64("land_id", id), zap.Error(err))
		return nil, err
	}

	var l land.Land
	if err := json.Unmarshal(data, &l); err != nil {
		c.log.Error("failed to unmarshal cached land", zap.Int64("land_id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int64("land_id", id))
	return &l, nil
}

// Set stores a land in Redis with TTL.
func (c *RedisLandCache) Set(ctx context.Context, l *land.Land) error {
	if l == nil {
		return errors.New("cannot cache nil land")
	}

	data, err := json.Marshal(l)
	if err != nil {
		c.log.Error("failed to marshal land for cache", zap.Int64("land_id", l.ID), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, Key(l.ID), data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int64("land_id", l.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached land", zap.Int64("land_id", l.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes a land from Redis.
func (c *RedisLandCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, Key(id)).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Int64("land_id", id), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.Int64("land_id", id))
	return nil
}
