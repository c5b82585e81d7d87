package server

import (
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		for _, key := range []string{EnvHost, EnvPort, EnvRateLimit, EnvRateLimitBurst, EnvShutdownSeconds} {
			t.Setenv(key, "")
		}
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
			t.Errorf("unexpected rate limit %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
		if cfg.ReadHeaderTimeout != 5*time.Second {
			t.Errorf("expected read header timeout 5s, got %v", cfg.ReadHeaderTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(EnvHost, "127.0.0.1")
		t.Setenv(EnvPort, "9090")
		t.Setenv(EnvRateLimit, "5")
		t.Setenv(EnvRateLimitBurst, "10")
		t.Setenv(EnvShutdownSeconds, "5")

		cfg := parseConfig()

		if cfg.Address != "127.0.0.1" {
			t.Errorf("expected address from env, got %q", cfg.Address)
		}
		if cfg.RateLimit != 5 || cfg.RateLimitBurst != 10 {
			t.Errorf("expected rate limit 5/10 from env, got %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown 5s from env, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("invalid values use defaults", func(t *testing.T) {
		t.Setenv(EnvPort, "invalid")
		t.Setenv(EnvRateLimit, "0")
		t.Setenv(EnvRateLimitBurst, "-1")
		t.Setenv(EnvShutdownSeconds, "-3")

		cfg := parseConfig()

		if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
			t.Errorf("expected default rate limit for invalid env, got %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for invalid env, got %d", cfg.Port)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})
}
