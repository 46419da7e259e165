// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/opres.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env must be development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.UseRedisCache() {
		t.Error("redis must be off without OPRES_REDIS_URL")
	}
	if cfg.CacheTTL != 3600 || cfg.CacheMaxSize != 10000 {
		t.Errorf("cache defaults = %d/%d", cfg.CacheTTL, cfg.CacheMaxSize)
	}
	if cfg.RateLimitRPS != 100 || cfg.RateLimitBurst != 200 {
		t.Errorf("rate limit defaults = %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPRES_SERVER_HOST", "0.0.0.0")
	t.Setenv("OPRES_SERVER_PORT", "9000")
	t.Setenv("OPRES_ENV", "production")
	t.Setenv("OPRES_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerAddr() != "0.0.0.0:9000" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if !cfg.UseRedisCache() {
		t.Error("redis URL must enable redis caching")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("OPRES_SERVER_PORT", "0")
	if _, err := Load(); err == nil {
		t.Error("port 0 must be rejected")
	}

	t.Setenv("OPRES_SERVER_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Error("out-of-range port must be rejected")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("OPRES_LOG_LEVEL", "verbose")
	if _, err := Load(); err == nil {
		t.Error("unknown log level must be rejected")
	}
}
