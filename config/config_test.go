package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BindAddr != ":8080" {
		t.Errorf("BindAddr = %q, want :8080", cfg.BindAddr)
	}
	if cfg.ModelProvider != "openai" {
		t.Errorf("ModelProvider = %q, want openai", cfg.ModelProvider)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.ShutdownTimeout)
	}
	if cfg.MaxSessions != 0 {
		t.Errorf("MaxSessions = %d, want 0", cfg.MaxSessions)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_BIND_ADDR", ":9999")
	t.Setenv("MODEL_PROVIDER", "mock")
	t.Setenv("APP_MAX_SESSIONS", "500")
	t.Setenv("GRAPH_ENGINE_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BindAddr != ":9999" {
		t.Errorf("BindAddr = %q, want :9999", cfg.BindAddr)
	}
	if cfg.ModelProvider != "mock" {
		t.Errorf("ModelProvider = %q, want mock", cfg.ModelProvider)
	}
	if cfg.MaxSessions != 500 {
		t.Errorf("MaxSessions = %d, want 500", cfg.MaxSessions)
	}
	if cfg.GraphTimeout != 5*time.Second {
		t.Errorf("GraphTimeout = %v, want 5s", cfg.GraphTimeout)
	}
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("MODEL_PROVIDER", "palm")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("APP_SHUTDOWN_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
