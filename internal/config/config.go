// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"OPRES_DB_PATH" envDefault:"./data/opres.db"`
	ServerHost string `env:"OPRES_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"OPRES_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"OPRES_ENV" envDefault:"development"`
	LogLevel   string `env:"OPRES_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string `env:"OPRES_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"OPRES_CACHE_PREFIX" envDefault:"opres:"`  // Redis key prefix
	CacheTTL     int    `env:"OPRES_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"OPRES_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// Rate limiting
	RateLimitRPS   float64 `env:"OPRES_RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst int     `env:"OPRES_RATE_LIMIT_BURST" envDefault:"200"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("OPRES_SERVER_PORT out of range: %d", cfg.ServerPort)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("OPRES_LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	return cfg, nil
}
