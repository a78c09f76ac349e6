package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SLOT_DAYS_AHEAD", "")
	t.Setenv("PROVIDER_TIMEOUT", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.SlotDaysAhead != 5 {
		t.Fatalf("expected default slot horizon, got %d", cfg.SlotDaysAhead)
	}
	if cfg.MaxSuggestedSlots != 5 {
		t.Fatalf("expected default max suggested slots, got %d", cfg.MaxSuggestedSlots)
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Fatalf("expected default provider timeout, got %s", cfg.ProviderTimeout)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected default database url empty, got %s", cfg.DatabaseURL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("SLOT_DAYS_AHEAD", "7")
	t.Setenv("MAX_SUGGESTED_SLOTS", "3")
	t.Setenv("PROVIDER_TIMEOUT", "2s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TRANSCRIPT_TTL", "24h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.SlotDaysAhead != 7 {
		t.Fatalf("expected slot horizon override, got %d", cfg.SlotDaysAhead)
	}
	if cfg.MaxSuggestedSlots != 3 {
		t.Fatalf("expected max slots override, got %d", cfg.MaxSuggestedSlots)
	}
	if cfg.ProviderTimeout != 2*time.Second {
		t.Fatalf("expected provider timeout override, got %s", cfg.ProviderTimeout)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected redis addr override, got %s", cfg.RedisAddr)
	}
	if cfg.TranscriptTTL != 24*time.Hour {
		t.Fatalf("expected transcript ttl override, got %s", cfg.TranscriptTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected CORS origins override, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SLOT_DAYS_AHEAD", "lots")
	t.Setenv("PROVIDER_TIMEOUT", "soon")
	cfg := Load()
	if cfg.SlotDaysAhead != 5 {
		t.Fatalf("expected fallback slot horizon, got %d", cfg.SlotDaysAhead)
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Fatalf("expected fallback provider timeout, got %s", cfg.ProviderTimeout)
	}
}
