// Package config loads service configuration from an env file and the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all application, database, Redis, JWT and pagination settings.
type Config struct {
	AppHost  string `env:"APP_HOST" envDefault:"localhost"`
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`

	Postgres struct {
		Host         string `env:"POSTGRES_HOST" envDefault:"localhost"`
		Port         int    `env:"POSTGRES_PORT" envDefault:"5432"`
		User         string `env:"POSTGRES_USER" envDefault:"user"`
		Password     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
		DB           string `env:"POSTGRES_DB" envDefault:"database"`
		MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
		MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`
		Migrate      bool   `env:"POSTGRES_MIGRATE" envDefault:"true"`
	}

	Redis struct {
		Host         string `env:"REDIS_HOST" envDefault:"localhost"`
		Port         int    `env:"REDIS_PORT" envDefault:"6379"`
		DB           int    `env:"REDIS_DB" envDefault:"0"`
		Password     string `env:"REDIS_PASSWORD"`
		PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
		MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	}

	JWT struct {
		SecretKey string `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
		ExpSecond int    `env:"JWT_EXP_SECOND" envDefault:"3600"`
	}

	Pagination struct {
		PageSize    int `env:"PAGINATION_PAGE_SIZE" envDefault:"20"`
		MaxPageSize int `env:"PAGINATION_MAX_PAGE_SIZE" envDefault:"100"`
	}
}

// Load reads the env file at path (a missing file is not an error) and parses the
// environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}
	if cfg.Pagination.PageSize <= 0 {
		return nil, fmt.Errorf("PAGINATION_PAGE_SIZE must be positive, got %d", cfg.Pagination.PageSize)
	}
	if cfg.Pagination.MaxPageSize < cfg.Pagination.PageSize {
		cfg.Pagination.MaxPageSize = cfg.Pagination.PageSize
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN returns the connection URL for PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Postgres.User, c.Postgres.Password, c.Postgres.Host, c.Postgres.Port, c.Postgres.DB)
}

// RedisAddr returns the host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// JWTExpiration returns the access token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWT.ExpSecond) * time.Second
}
