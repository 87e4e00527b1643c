package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "AUTH_ALGORITHM",
		"AUTH_ACCESS_TOKEN_EXPIRE_MINUTES", "ADMIN_DEFAULT_EMAIL", "ADMIN_DEFAULT_PASSWORD",
		"CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Auth.AccessTokenTTL(); got != 12*time.Hour {
		t.Errorf("token ttl = %v, want 12h", got)
	}
	if cfg.Auth.Algorithm != "HS256" {
		t.Errorf("algorithm = %q", cfg.Auth.Algorithm)
	}
	if cfg.Admin.Email != "admin@wavepark.local" || cfg.Admin.Password != "ChangeMe123!" {
		t.Errorf("admin defaults = %+v", cfg.Admin)
	}
	if cfg.Redis.Enabled() {
		t.Error("redis should be disabled without REDIS_ADDR")
	}
	if len(cfg.App.CORSAllowOrigins) != 2 {
		t.Errorf("cors origins = %v", cfg.App.CORSAllowOrigins)
	}
	if cfg.App.Addr() != "0.0.0.0:8000" {
		t.Errorf("addr = %q", cfg.App.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_ALGORITHM", "hs512")
	t.Setenv("AUTH_ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.Algorithm != "HS512" {
		t.Errorf("algorithm = %q", cfg.Auth.Algorithm)
	}
	if cfg.Auth.AccessTokenTTL() != 30*time.Minute {
		t.Errorf("ttl = %v", cfg.Auth.AccessTokenTTL())
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("invalid int should fall back, got %d", cfg.Auth.BcryptCost)
	}
	if got := cfg.App.CORSAllowOrigins; len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("cors origins = %v", got)
	}
	if !cfg.Redis.Enabled() {
		t.Error("redis should be enabled")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("algorithm", func(t *testing.T) {
		t.Setenv("AUTH_ALGORITHM", "RS256")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for RS256")
		}
	})
	t.Run("redis db", func(t *testing.T) {
		t.Setenv("AUTH_ALGORITHM", "")
		t.Setenv("REDIS_DB", "zero")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for REDIS_DB")
		}
	})
}
