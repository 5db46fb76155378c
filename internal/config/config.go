package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	CORS     CORSConfig     `envPrefix:"CORS_"`
	Payroll  PayrollConfig  `envPrefix:"PAYROLL_"`
	LogLevel string         `env:"LOG_LEVEL" envDefault:"info"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Name    string `env:"NAME" envDefault:"hris-backend"`
	Version string `env:"VERSION" envDefault:"v1.0.0"`
	Port    int    `env:"PORT" envDefault:"3000"`
	Env     string `env:"ENV" envDefault:"development"`
}

// ServerConfig holds HTTP server timeouts in seconds
type ServerConfig struct {
	ReadTimeout     int `env:"READ_TIMEOUT" envDefault:"10"`
	WriteTimeout    int `env:"WRITE_TIMEOUT" envDefault:"15"`
	IdleTimeout     int `env:"IDLE_TIMEOUT" envDefault:"60"`
	ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
}

type DatabaseConfig struct {
	// URL takes precedence over the discrete fields when set.
	URL         string `env:"URL"`
	Host        string `env:"HOST" envDefault:"localhost"`
	Port        int    `env:"PORT" envDefault:"5432"`
	User        string `env:"USER" envDefault:"postgres"`
	Password    string `env:"PASSWORD" envDefault:"postgres"`
	Name        string `env:"NAME" envDefault:"hris"`
	SSLMode     string `env:"SSL_MODE" envDefault:"disable"`
	MaxConns    int32  `env:"MAX_CONNS" envDefault:"25"`
	MinConns    int32  `env:"MIN_CONNS" envDefault:"5"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type PayrollConfig struct {
	DefaultHourlyRate float64 `env:"DEFAULT_HOURLY_RATE" envDefault:"100"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, fmt.Errorf("invalid environment: %w", aggErr.Errors[0])
		}
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	// DATABASE_URL is the conventional name and does not follow the DB_ prefix.
	if url := os.Getenv("DATABASE_URL"); url != "" && cfg.Database.URL == "" {
		cfg.Database.URL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Database.URL == "" && c.Database.Host == "" {
		return fmt.Errorf("DATABASE_URL or DB_HOST is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.Payroll.DefaultHourlyRate < 0 {
		return fmt.Errorf("PAYROLL_DEFAULT_HOURLY_RATE must be non-negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (s ServerConfig) Duration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
