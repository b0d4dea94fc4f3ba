package config

import (
	"errors"
	"testing"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); !errors.Is(err, ErrMissingDatabaseURL) {
		t.Fatalf("expected ErrMissingDatabaseURL, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "app:pass@tcp(127.0.0.1:3306)/stylecraft?parseTime=true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("unexpected addr: %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "mysql" {
		t.Fatalf("unexpected driver: %q", cfg.DBDriver)
	}
	if cfg.AIProvider != "openai" {
		t.Fatalf("unexpected provider: %q", cfg.AIProvider)
	}
	if cfg.OllamaBaseURL != "http://localhost:11434/v1" {
		t.Fatalf("unexpected base url: %q", cfg.OllamaBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:dev.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("AI_PROVIDER", "mock")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBDriver != "sqlite" || cfg.AIProvider != "mock" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
