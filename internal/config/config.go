// Package config reads framekit settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, so RedisURL is read from
// FRAMEKIT_REDIS_URL.
const Prefix = "framekit"

// Config holds defaults for CLI flags. Flags given on the command line
// always win.
type Config struct {
	RedisURL string        `envconfig:"REDIS_URL"`
	Width    float64       `envconfig:"WIDTH" default:"80"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"168h"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("read environment: FRAMEKIT_WIDTH must be positive, got %g", cfg.Width)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("read environment: FRAMEKIT_CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}
	return &cfg, nil
}

// Default returns the configuration used when the environment sets
// nothing.
func Default() *Config {
	return &Config{Width: 80, CacheTTL: 7 * 24 * time.Hour}
}
