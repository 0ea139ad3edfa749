// Package config loads runtime settings from the environment with safe
// defaults, so the service starts unconfigured in local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains all runtime settings for the GraphQA service.
type Config struct {
	BindAddr         string
	ShutdownTimeout  time.Duration
	MetricsNamespace string

	LogLevel  string
	LogFormat string

	// ModelProvider selects the reasoning backend: "openai", "anthropic"
	// or "mock" (deterministic echo, for local development without keys).
	ModelProvider string
	ModelName     string

	GraphEngineURL string
	GraphTimeout   time.Duration

	// MaxSessions bounds the number of sessions the in-memory store tracks
	// before evicting least-recently-used ones. Zero disables the bound.
	MaxSessions int
}

// Load reads environment variables and applies safe defaults.
func Load() (Config, error) {
	cfg := Config{
		BindAddr:         envOrDefault("APP_BIND_ADDR", ":8080"),
		MetricsNamespace: envOrDefault("APP_METRICS_NAMESPACE", "graphqa"),
		LogLevel:         envOrDefault("APP_LOG_LEVEL", "info"),
		LogFormat:        envOrDefault("APP_LOG_FORMAT", "json"),
		ModelProvider:    envOrDefault("MODEL_PROVIDER", "openai"),
		ModelName:        strings.TrimSpace(os.Getenv("MODEL_NAME")),
		GraphEngineURL:   envOrDefault("GRAPH_ENGINE_URL", "http://localhost:7474"),
		ShutdownTimeout:  15 * time.Second,
		GraphTimeout:     30 * time.Second,
		MaxSessions:      0,
	}

	var err error
	cfg.ShutdownTimeout, err = durationFromEnv("APP_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.GraphTimeout, err = durationFromEnv("GRAPH_ENGINE_TIMEOUT", cfg.GraphTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxSessions, err = intFromEnv("APP_MAX_SESSIONS", cfg.MaxSessions)
	if err != nil {
		return Config{}, err
	}

	switch cfg.ModelProvider {
	case "openai", "anthropic", "mock":
	default:
		return Config{}, fmt.Errorf("unknown MODEL_PROVIDER %q", cfg.ModelProvider)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
