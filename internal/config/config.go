package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvTest = "test"

	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Addr     string `env:"APP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Store    string `env:"BOOKS_STORE" envDefault:"postgres"`
	Postgres Postgres
	HTTP     HTTP
}

type Postgres struct {
	URL          string        `env:"DATABASE_URL" envDefault:"postgres://localhost:5434/books"`
	TestURL      string        `env:"TEST_DATABASE_URL" envDefault:"postgres://localhost:5434/books_test"`
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"3s"`
	MaxConns     int32         `env:"DB_MAX_CONNS" envDefault:"10"`
}

type HTTP struct {
	ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	MaxBodyBytes   int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"40"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	EnableHSTS     bool          `env:"ENABLE_HSTS" envDefault:"false"`
}

// LoadEnvFiles reads .env and .env.local into the process environment.
// Variables already set by the runtime are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load parses the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the configuration from the given variables only.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad loads env files and parses the configuration, exiting on error.
func MustLoad() *Config {
	LoadEnvFiles()

	cfg, err := Load()
	if err != nil {
		log.Fatalf("config error: %s", err)
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.Store {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("unknown BOOKS_STORE %q, want %q or %q", c.Store, StorePostgres, StoreMemory)
	}
	if c.Postgres.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive, got %s", c.Postgres.QueryTimeout)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.HTTP.MaxBodyBytes)
	}
	if c.HTTP.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %g", c.HTTP.RateLimitRPS)
	}
	if c.HTTP.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.HTTP.RateLimitBurst)
	}
	return nil
}

// DatabaseURL picks the connection string for the current environment.
func (c *Config) DatabaseURL() string {
	if c.Env == EnvTest {
		return c.Postgres.TestURL
	}
	return c.Postgres.URL
}

// RedactDSN hides the credentials part of a connection string.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
