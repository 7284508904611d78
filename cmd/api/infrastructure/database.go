package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"land-marketplace-service/internal/adapter/db/postgres"
	"land-marketplace-service/internal/config"
	"land-marketplace-service/pkg/logger"
)

// NewDatabase opens the configured database and applies the pool settings.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level)

	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DB.SQLitePath)
	default:
		dialector = pgdriver.Open(cfg.DB.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.DB.Driver == config.DriverSQLite {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DB.ConnMaxIdleTime) * time.Second)

	l.Info("database connected successfully",
		zap.String("driver", cfg.DB.Driver),
		zap.Int("max_open_conns", cfg.DB.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.DB.MaxIdleConns),
		zap.Int("conn_max_lifetime_seconds", cfg.DB.ConnMaxLifetime),
		zap.Int("conn_max_idle_time_seconds", cfg.DB.ConnMaxIdleTime),
	)

	return db, nil
}

// Migrate creates or updates the users, lands and transactions tables.
func Migrate(db *gorm.DB, l *zap.Logger) error {
	if err := db.AutoMigrate(postgres.Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	l.Info("database migrated", zap.Int("models", len(postgres.Models())))
	return nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// PingDatabase returns a health probe for db.
func PingDatabase(db *gorm.DB) (func(ctx context.Context) error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext, nil
}
