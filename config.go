package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the fundcache service.
type Config struct {
	RedisHost    string `mapstructure:"redis_host"`
	RedisPort    int    `mapstructure:"redis_port"`
	HTTPPort     int    `mapstructure:"http_port"`
	YahooBaseURL string `mapstructure:"yahoo_base_url"`
}

// loadConfig reads configuration from environment variables.
//
// Recognized variables:
//   - REDIS_HOST (default localhost)
//   - REDIS_PORT (default 6379)
//   - HTTP_PORT (default 8080)
//   - YAHOO_BASE_URL (default production endpoint)
func loadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("http_port", 8080)
	v.SetDefault("yahoo_base_url", "https://query1.finance.yahoo.com")

	v.BindEnv("redis_host", "REDIS_HOST")
	v.BindEnv("redis_port", "REDIS_PORT")
	v.BindEnv("http_port", "HTTP_PORT")
	v.BindEnv("yahoo_base_url", "YAHOO_BASE_URL")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.RedisPort < 1 || cfg.RedisPort > 65535 {
		return nil, fmt.Errorf("invalid redis_port: %d", cfg.RedisPort)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid http_port: %d", cfg.HTTPPort)
	}
	if cfg.YahooBaseURL == "" {
		return nil, fmt.Errorf("yahoo_base_url must not be empty")
	}

	return cfg, nil
}
