package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// config is everything the server reads from the environment. Missing
// optional values fall back to the defaults below.
type config struct {
	DBURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CalorieMapTTL time.Duration

	OpenAIBaseURL string
	OpenAIModel   string

	Port     string
	LogLevel string
}

func loadConfig() (config, error) {
	cfg := config{
		DBURL:         os.Getenv("DB_URL"),
		RedisAddr:     fmt.Sprintf("%s:%s", envOr("REDIS_HOST", "localhost"), envOr("REDIS_PORT", "6379")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o-mini"),
		Port:          envOr("PORT", "3000"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
	}
	if cfg.DBURL == "" {
		return cfg, fmt.Errorf("DB_URL must be set")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}
	if v := os.Getenv("CALORIE_MAP_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CALORIE_MAP_TTL %q: %w", v, err)
		}
		cfg.CalorieMapTTL = ttl
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newLogger builds the production zap logger at the given level
// ("debug", "info", "warn", "error").
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
