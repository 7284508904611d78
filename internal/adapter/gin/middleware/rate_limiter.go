package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"land-marketplace-service/pkg/logger"
)

// RateLimiterConfig holds configuration for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstCapacity     int
	Enabled           bool
}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// tokenBucketScript refills the bucket by elapsed time and takes one token.
// Bucket layout: {last_refill (ms), tokens}.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])      -- tokens per second
	local capacity = tonumber(ARGV[2])  -- max tokens in bucket
	local now = tonumber(ARGV[3])       -- current time in milliseconds

	local bucket = redis.call('HMGET', key, 'last_refill', 'tokens')
	local last_refill = tonumber(bucket[1]) or now
	local tokens = tonumber(bucket[2]) or capacity

	local elapsed = math.max(0, now - last_refill)
	tokens = math.min(capacity, tokens + elapsed * rate / 1000)

	local allowed = 0
	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	end

	redis.call('HMSET', key, 'last_refill', now, 'tokens', tokens)
	redis.call('EXPIRE', key, 60)
	return allowed
`)

// RedisLimiter is a token bucket shared by every instance through Redis.
type RedisLimiter struct {
	client *redis.Client
	config RateLimiterConfig
	now    func() time.Time
}

// NewRedisLimiter creates a Redis-backed token bucket limiter.
func NewRedisLimiter(client *redis.Client, config RateLimiterConfig) *RedisLimiter {
	return &RedisLimiter{client: client, config: config, now: time.Now}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	allowed, err := tokenBucketScript.Run(ctx, l.client, []string{"ratelimit:tb:" + key},
		l.config.RequestsPerSecond,
		l.config.BurstCapacity,
		l.now().UnixMilli(),
	).Int64()
	if err != nil {
		return false, err
	}
	return allowed == 1, nil
}

// LocalLimiter keeps one in-process token bucket per key. Used when Redis is disabled.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*localEntry
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLocalLimiter creates an in-process limiter. Buckets idle for longer than a minute are dropped.
func NewLocalLimiter(config RateLimiterConfig) *LocalLimiter {
	return &LocalLimiter{
		limiters: make(map[string]*localEntry),
		limit:    rate.Limit(config.RequestsPerSecond),
		burst:    config.BurstCapacity,
		idleTTL:  time.Minute,
		now:      time.Now,
	}
}

// Allow implements Limiter.
func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.limiters[key]
	if !ok {
		l.evictIdle(now)
		e = &localEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1), nil
}

// evictIdle must be called with mu held.
func (l *LocalLimiter) evictIdle(now time.Time) {
	for k, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.limiters, k)
		}
	}
}

// RateLimiter returns a Gin middleware that limits each client per method and route.
// Limiter errors let the request through.
func RateLimiter(limiter Limiter, config RateLimiterConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || !config.Enabled {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := fmt.Sprintf("%s:%s:%s", c.Request.Method, route, c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.WithContext(c.Request.Context(), log).Warn("rate limiter error, allowing request",
				zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			logger.WithContext(c.Request.Context(), log).Warn("rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.String("route", route),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": fmt.Sprintf("Rate limit exceeded: %.2f requests/second (burst capacity: %d)", config.RequestsPerSecond, config.BurstCapacity),
			})
			return
		}

		c.Next()
	}
}
