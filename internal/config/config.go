package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
// Keys are flat (app.env style), so every group is squashed into the top level.
type Config struct {
	App       AppConfig       `mapstructure:",squash"`
	DB        DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	RateLimit RateLimitConfig `mapstructure:",squash"`
	Logger    LoggerConfig    `mapstructure:",squash"`
	Security  SecurityConfig  `mapstructure:",squash"`
}

// AppConfig holds configuration for the application servers
type AppConfig struct {
	Environment            string `mapstructure:"APP_ENV"`
	HTTPPort               string `mapstructure:"HTTP_PORT"`
	GRPCPort               string `mapstructure:"GRPC_PORT"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// DatabaseConfig holds configuration for the database
type DatabaseConfig struct {
	Driver          string `mapstructure:"DB_DRIVER"`
	Host            string `mapstructure:"DB_HOST"`
	Port            string `mapstructure:"DB_PORT"`
	User            string `mapstructure:"DB_USER"`
	Password        string `mapstructure:"DB_PASSWORD"`
	Name            string `mapstructure:"DB_NAME"`
	SSLMode         string `mapstructure:"DB_SSLMODE"`
	SQLitePath      string `mapstructure:"DB_SQLITE_PATH"`
	MaxOpenConns    int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `mapstructure:"DB_CONN_MAX_LIFETIME_SECONDS"`
	ConnMaxIdleTime int    `mapstructure:"DB_CONN_MAX_IDLE_TIME_SECONDS"`
	AutoMigrate     bool   `mapstructure:"DB_AUTO_MIGRATE"`
}

// RedisConfig holds configuration for the Redis cache
type RedisConfig struct {
	Enabled     bool   `mapstructure:"REDIS_ENABLED"`
	Host        string `mapstructure:"REDIS_HOST"`
	Port        string `mapstructure:"REDIS_PORT"`
	Password    string `mapstructure:"REDIS_PASSWORD"`
	DB          int    `mapstructure:"REDIS_DB"`
	MaxRetries  int    `mapstructure:"REDIS_MAX_RETRIES"`
	PoolSize    int    `mapstructure:"REDIS_POOL_SIZE"`
	MinIdleConn int    `mapstructure:"REDIS_MIN_IDLE_CONN"`
	CacheTTL    int    `mapstructure:"REDIS_CACHE_TTL_SECONDS"`
}

// RateLimitConfig holds configuration for request rate limiting
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	RequestsPerSecond float64 `mapstructure:"RATE_LIMIT_RPS"`
	BurstCapacity     int     `mapstructure:"RATE_LIMIT_BURST"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string  `mapstructure:"LOG_LEVEL"`
	Format           string  `mapstructure:"LOG_FORMAT"`
	OutputPath       string  `mapstructure:"LOG_OUTPUT_PATH"`
	SlowQuerySeconds float64 `mapstructure:"LOG_SLOW_QUERY_SECONDS"`
	EnableSampling   bool    `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName      string  `mapstructure:"SERVICE_NAME"`
	ServiceVersion   string  `mapstructure:"SERVICE_VERSION"`
}

// SecurityConfig holds password hashing settings
type SecurityConfig struct {
	BcryptCost int `mapstructure:"BCRYPT_COST"`
}

// LoadConfig reads configuration from app.env in path and from environment variables.
// Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app") // app.env
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Logger defaults depend on APP_ENV, which may come from the file
	setLoggerDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.DB.Driver = strings.ToLower(config.DB.Driver)

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("GRPC_PORT", "50051")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "land_marketplace")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "land_marketplace.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SECONDS", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME_SECONDS", 60)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_MAX_RETRIES", 3)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONN", 2)
	v.SetDefault("REDIS_CACHE_TTL_SECONDS", 300)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	v.SetDefault("SERVICE_NAME", "land-marketplace-service")
	v.SetDefault("SERVICE_VERSION", "1.0.0")

	v.SetDefault("BCRYPT_COST", 10)
}

func setLoggerDefaults(v *viper.Viper) {
	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
}

// Validate checks the configuration for values the service cannot start with.
func (c *Config) Validate() error {
	var problems []string

	if c.App.HTTPPort == "" {
		problems = append(problems, "HTTP_PORT is required")
	}
	if c.App.GRPCPort == "" {
		problems = append(problems, "GRPC_PORT is required")
	}
	if c.App.ShutdownTimeoutSeconds <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Host == "" || c.DB.Name == "" {
			problems = append(problems, "DB_HOST and DB_NAME are required for postgres")
		}
	case DriverSQLite:
		if c.DB.SQLitePath == "" {
			problems = append(problems, "DB_SQLITE_PATH is required for sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported DB_DRIVER %q", c.DB.Driver))
	}
	if c.DB.MaxOpenConns <= 0 || c.DB.MaxIdleConns < 0 {
		problems = append(problems, "database pool sizes must be positive")
	}

	if c.Redis.Enabled {
		if c.Redis.Host == "" || c.Redis.Port == "" {
			problems = append(problems, "REDIS_HOST and REDIS_PORT are required when Redis is enabled")
		}
		if c.Redis.PoolSize <= 0 {
			problems = append(problems, "REDIS_POOL_SIZE must be positive")
		}
		if c.Redis.CacheTTL <= 0 {
			problems = append(problems, "REDIS_CACHE_TTL_SECONDS must be positive")
		}
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.BurstCapacity <= 0) {
		problems = append(problems, "RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}

	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		problems = append(problems, "BCRYPT_COST must be between 4 and 31")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN returns the PostgreSQL Data Source Name
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}
