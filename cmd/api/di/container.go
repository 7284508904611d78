package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"land-marketplace-service/cmd/api/infrastructure"
	"land-marketplace-service/internal/adapter/cache"
	"land-marketplace-service/internal/adapter/db/postgres"
	ginhandler "land-marketplace-service/internal/adapter/gin/handler"
	"land-marketplace-service/internal/adapter/gin/middleware"
	"land-marketplace-service/internal/adapter/repository/cached"
	"land-marketplace-service/internal/config"
	"land-marketplace-service/internal/usecase/land"
	"land-marketplace-service/internal/usecase/transaction"
	"land-marketplace-service/internal/usecase/user"
	"land-marketplace-service/pkg/metrics"
	redisclient "land-marketplace-service/pkg/redis"
	"land-marketplace-service/pkg/security"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	RedisClient   *redisclient.Client
	Metrics       *metrics.Metrics
	UserUC        user.Usecase
	LandUC        land.Usecase
	TransactionUC transaction.Usecase
	RateLimiter   middleware.Limiter
	Handlers      Handlers
}

// Handlers groups the Gin handlers
type Handlers struct {
	User        *ginhandler.UserHandler
	Land        *ginhandler.LandHandler
	Transaction *ginhandler.TransactionHandler
	Health      *ginhandler.HealthHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.DB.AutoMigrate {
		if err := infrastructure.Migrate(db, l); err != nil {
			_ = infrastructure.CloseDatabase(db)
			return nil, err
		}
	}

	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	m := metrics.New()

	// Repositories
	userRepo := postgres.NewUserRepoPG(db, l)
	txRepo := postgres.NewTransactionRepoPG(db, l)
	var landRepo land.Repository = postgres.NewLandRepoPG(db, l)
	if rdb != nil {
		landCache := cache.NewRedisLandCache(rdb.Client, time.Duration(cfg.Redis.CacheTTL)*time.Second, l)
		landRepo = cached.NewCachedLandRepository(landRepo, landCache, m, l)
	}

	// Use cases
	userUC := user.New(userRepo, security.NewPasswordHasher(cfg.Security.BcryptCost), l)
	landUC := land.New(landRepo, userRepo, l)
	txUC := transaction.New(txRepo, landRepo, l)

	// Rate limiter: shared through Redis when available, per instance otherwise
	limiterCfg := RateLimiterConfig(cfg)
	var limiter middleware.Limiter
	if rdb != nil {
		limiter = middleware.NewRedisLimiter(rdb.Client, limiterCfg)
	} else {
		limiter = middleware.NewLocalLimiter(limiterCfg)
	}

	dbPing, err := infrastructure.PingDatabase(db)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = infrastructure.CloseDatabase(db)
		return nil, err
	}
	checks := map[string]ginhandler.Pinger{"database": ginhandler.PingFunc(dbPing)}
	if rdb != nil {
		checks["redis"] = rdb
	}

	return &Container{
		Config:        cfg,
		Logger:        l,
		DB:            db,
		RedisClient:   rdb,
		Metrics:       m,
		UserUC:        userUC,
		LandUC:        landUC,
		TransactionUC: txUC,
		RateLimiter:   limiter,
		Handlers: Handlers{
			User:        ginhandler.NewUserHandler(userUC, l),
			Land:        ginhandler.NewLandHandler(landUC, l),
			Transaction: ginhandler.NewTransactionHandler(txUC, l),
			Health:      ginhandler.NewHealthHandler(cfg.Logger.ServiceName, checks, l),
		},
	}, nil
}

// RateLimiterConfig maps the rate limit settings onto the middleware config
func RateLimiterConfig(cfg *config.Config) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstCapacity:     cfg.RateLimit.BurstCapacity,
		Enabled:           cfg.RateLimit.Enabled,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
