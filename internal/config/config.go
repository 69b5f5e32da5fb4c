// Package config loads runtime configuration from the environment via
// viper, with a .env file honored in development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port        string        `mapstructure:"port"`
	GinMode     string        `mapstructure:"gin_mode"`
	DatabaseURL string        `mapstructure:"database_url"`
	RedisURL    string        `mapstructure:"redis_url"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
}

// Load reads the environment (and .env, when present) and returns a
// validated Config. DATABASE_URL is the only required value.
func Load() (*Config, error) {
	// Missing .env is fine in production; variables come from the host.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_url", "")
	// The public listing accepts up to 15 minutes of staleness.
	v.SetDefault("cache_ttl", 15*time.Minute)
	v.SetDefault("session_ttl", 24*time.Hour)
	v.SetDefault("cors_origins", "")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for i, origin := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(origin)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 15 * time.Minute
	}

	return cfg, nil
}
