package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the client reads from the environment. BASE_URL
// is the only required value: the root of the remote events API, with or
// without a trailing slash.
type Config struct {
	BaseURL     string        `env:"BASE_URL,     required"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=15s"`

	// SessionFile overrides the default session location under the user
	// config directory.
	SessionFile string `env:"SESSION_FILE"`

	// MetricsAddr, when set, enables the observability listener in browse
	// mode (e.g. "127.0.0.1:9180").
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
