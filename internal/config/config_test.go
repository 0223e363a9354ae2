package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values take the default path in getEnv, shielding the test from
	// whatever the surrounding environment has set.
	for _, key := range []string{
		"HOST", "PORT", "APP_ENV",
		"READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"MAX_HEADER_BYTES", "MAX_BODY_BYTES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %q", cfg.Host)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("expected ReadTimeout 5s, got %v", cfg.ReadTimeout)
	}
	if cfg.ReadHeaderTimeout != 2*time.Second {
		t.Errorf("expected ReadHeaderTimeout 2s, got %v", cfg.ReadHeaderTimeout)
	}
	if cfg.WriteTimeout != 10*time.Second {
		t.Errorf("expected WriteTimeout 10s, got %v", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout != 60*time.Second {
		t.Errorf("expected IdleTimeout 60s, got %v", cfg.IdleTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxHeaderBytes != 64<<10 {
		t.Errorf("expected MaxHeaderBytes 64KB, got %d", cfg.MaxHeaderBytes)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("expected MaxBodyBytes 1MB, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("READ_TIMEOUT", "1s")
	t.Setenv("SHUTDOWN_TIMEOUT", "2m")
	t.Setenv("MAX_HEADER_BYTES", "4096")

	cfg := Load()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got %q", cfg.Host)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.Env != "prod" {
		t.Errorf("expected env prod, got %q", cfg.Env)
	}
	if cfg.ReadTimeout != time.Second {
		t.Errorf("expected ReadTimeout 1s, got %v", cfg.ReadTimeout)
	}
	if cfg.ShutdownTimeout != 2*time.Minute {
		t.Errorf("expected ShutdownTimeout 2m, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxHeaderBytes != 4096 {
		t.Errorf("expected MaxHeaderBytes 4096, got %d", cfg.MaxHeaderBytes)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("MAX_HEADER_BYTES", "lots")

	cfg := Load()

	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("expected fallback ReadTimeout 5s, got %v", cfg.ReadTimeout)
	}
	if cfg.MaxHeaderBytes != 64<<10 {
		t.Errorf("expected fallback MaxHeaderBytes 64KB, got %d", cfg.MaxHeaderBytes)
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port string
		want string
	}{
		{"defaults", "", "", "0.0.0.0:8000"},
		{"loopback", "127.0.0.1", "8080", "127.0.0.1:8080"},
		{"ipv6", "::1", "8000", "[::1]:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOST", tt.host)
			t.Setenv("PORT", tt.port)
			cfg := Load()
			if got := cfg.Addr(); got != tt.want {
				t.Errorf("expected addr %q, got %q", tt.want, got)
			}
		})
	}
}
