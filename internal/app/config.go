package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"30s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// RedisAddr empty disables the dashboard cache and idempotency keys.
	RedisAddr         string        `envconfig:"REDIS_ADDR"`
	DashboardCacheTTL time.Duration `envconfig:"DASHBOARD_CACHE_TTL" default:"5m"`
	IdempotencyTTL    time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`

	GotenbergURL string `envconfig:"GOTENBERG_URL" default:"http://127.0.0.1:3000"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "pretty", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimitPerMinute)
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c == nil || c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	return level, nil
}
