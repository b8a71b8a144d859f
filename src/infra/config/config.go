// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
// A .env file in the working directory, if present, is loaded first.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "APP"

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 3000)
	Port int `envconfig:"PORT" default:"3000" validate:"min=1,max=65535"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost" validate:"required"`
	Port     int    `envconfig:"DB_PORT" default:"5432" validate:"min=1,max=65535"`
	User     string `envconfig:"DB_USER" default:"vagrant" validate:"required"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	Name     string `envconfig:"DB_NAME" default:"lightbnb" validate:"required"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	// MaxOpenConns is the maximum number of open connections (default: 25)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"25" validate:"min=1"`

	// MaxIdleConns is kept open even when idle (default: 5)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"5" validate:"min=0,ltefield=MaxOpenConns"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// LogQueries traces every SQL statement and its arguments through the logger.
	LogQueries bool `envconfig:"DB_LOG_QUERIES" default:"false"`

	// MigrationsTable records the applied schema version.
	MigrationsTable string `envconfig:"DB_MIGRATIONS_TABLE" default:"schema_version" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: trace, debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn warning error"`

	// Format is the log format: json, console (default: console)
	Format string `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=json console"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		c.Name,
		c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config

	// Each section is processed separately so env vars stay flat:
	// APP_PORT rather than APP_SERVER_PORT.
	if err := envconfig.Process(Prefix, &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
