package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"land-marketplace-service/cmd/api/di"
	"land-marketplace-service/cmd/api/infrastructure"
	"land-marketplace-service/cmd/api/server"
	"land-marketplace-service/internal/adapter/gin/router"
	"land-marketplace-service/internal/config"
	"land-marketplace-service/pkg/logger"
)

// App represents the application
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Server    *server.Server
	Container *di.Container
}

// New creates a new application instance
func New(configPath string) (*App, error) {
	cfg, l, err := Bootstrap(configPath)
	if err != nil {
		return nil, err
	}

	container, err := di.NewContainer(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	r := router.SetupRouter(router.Handlers{
		User:        container.Handlers.User,
		Land:        container.Handlers.Land,
		Transaction: container.Handlers.Transaction,
		Health:      container.Handlers.Health,
	}, router.Options{
		Metrics:     container.Metrics,
		RateLimiter: container.RateLimiter,
		RateLimit:   di.RateLimiterConfig(cfg),
		Debug:       cfg.App.Environment == "development",
	}, l)

	return &App{
		Config:    cfg,
		Logger:    l,
		Server:    server.New(cfg, l, r),
		Container: container,
	}, nil
}

// Bootstrap loads the configuration and builds the logger.
func Bootstrap(configPath string) (*config.Config, *zap.Logger, error) {
	if configPath == "" {
		configPath = getConfigPath()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    cfg.App.Environment,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// Migrate runs the schema migration and exits.
func Migrate(configPath string) error {
	cfg, l, err := Bootstrap(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return err
	}
	defer func() { _ = infrastructure.CloseDatabase(db) }()

	return infrastructure.Migrate(db, l)
}

// Run starts the application
func (a *App) Run(ctx context.Context) error {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			a.Logger.Error("panic recovered in application",
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()

	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("environment", a.Config.App.Environment),
		zap.String("db_driver", a.Config.DB.Driver),
		zap.Bool("redis_enabled", a.Config.Redis.Enabled),
	)

	errChan := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errChan <- fmt.Errorf("server panic: %v", r)
			}
		}()

		if err := a.Server.Start(); err != nil {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Info("shutting down application...")
		return a.shutdown()
	case err := <-errChan:
		_ = a.shutdown()
		return err
	}
}

// shutdown gracefully shuts down the application
func (a *App) shutdown() error {
	timeout := time.Duration(a.Config.App.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.Logger.Info("starting graceful shutdown",
		zap.Int("timeout_seconds", a.Config.App.ShutdownTimeoutSeconds),
	)

	var errs []error

	if a.Server != nil {
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("failed to shutdown servers", zap.Error(err))
			errs = append(errs, err)
		}
	}

	if a.Container != nil {
		a.Logger.Info("closing container resources...")
		if err := a.Container.Close(); err != nil {
			a.Logger.Error("failed to close container", zap.Error(err))
			errs = append(errs, fmt.Errorf("container close: %w", err))
		}
	}

	// Sync logger
	if err := a.Logger.Sync(); err != nil {
		// Ignore sync errors for stdout/stderr
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			errs = append(errs, fmt.Errorf("logger sync: %w", err))
		}
	}

	a.Logger.Info("application shutdown complete")

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	return nil
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}
