package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the process-wide settings. Everything comes from the
// environment; only DATABASE_URL has no default.
type Config struct {
	DatabaseURL      string
	RedisAddr        string
	ListenAddr       string
	CategoryCacheTTL time.Duration
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CATEGORY_CACHE_TTL", "60s")

	cfg := Config{
		DatabaseURL:      v.GetString("DATABASE_URL"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		ListenAddr:       v.GetString("LISTEN_ADDR"),
		CategoryCacheTTL: v.GetDuration("CATEGORY_CACHE_TTL"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	if cfg.CategoryCacheTTL <= 0 {
		return Config{}, fmt.Errorf("CATEGORY_CACHE_TTL must be positive")
	}
	return cfg, nil
}
