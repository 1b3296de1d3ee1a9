package main

import (
	"os"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"REDIS_HOST", "REDIS_PORT", "HTTP_PORT", "YAHOO_BASE_URL"} {
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.RedisHost != "localhost" {
		t.Errorf("RedisHost = %q, want localhost", cfg.RedisHost)
	}
	if cfg.RedisPort != 6379 {
		t.Errorf("RedisPort = %d, want 6379", cfg.RedisPort)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.YahooBaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("YahooBaseURL = %q, want production endpoint", cfg.YahooBaseURL)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("YAHOO_BASE_URL", "http://localhost:4000")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.RedisHost != "cache.internal" {
		t.Errorf("RedisHost = %q, want cache.internal", cfg.RedisHost)
	}
	if cfg.RedisPort != 6380 {
		t.Errorf("RedisPort = %d, want 6380", cfg.RedisPort)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.YahooBaseURL != "http://localhost:4000" {
		t.Errorf("YahooBaseURL = %q, want http://localhost:4000", cfg.YahooBaseURL)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"redis port out of range", "REDIS_PORT", "99999999"},
		{"redis port not a number", "REDIS_PORT", "not-a-port"},
		{"http port out of range", "HTTP_PORT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := loadConfig(); err == nil {
				t.Fatalf("loadConfig() error = nil, want an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
