package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != "8080" {
		t.Errorf("HTTP.Port = %q, want 8080", cfg.HTTP.Port)
	}
	if cfg.App.Env != "development" {
		t.Errorf("App.Env = %q, want development", cfg.App.Env)
	}
	if got := cfg.ProbeTimeout(); got != 5*time.Second {
		t.Errorf("ProbeTimeout = %v, want 5s", got)
	}
}

func TestLoadWithoutRedisKeys(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// the service still boots; the probe reports "not configured"
	if cfg.RedisConfigured() {
		t.Error("RedisConfigured() = true, want false")
	}
}

func TestRedisConfigured(t *testing.T) {
	tests := []struct {
		name string
		url  string
		addr string
		want bool
	}{
		{"both empty", "", "", false},
		{"whitespace only", "  ", "\t", false},
		{"url set", "redis://localhost:6379", "", true},
		{"addr set", "", "localhost:6379", true},
		{"both set", "redis://localhost:6379", "localhost:6379", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Redis.URL = tt.url
			cfg.Redis.Addr = tt.addr
			if got := cfg.RedisConfigured(); got != tt.want {
				t.Errorf("RedisConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PROBE_TIMEOUT_SECONDS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Redis.URL != "redis://cache:6379" {
		t.Errorf("Redis.URL = %q", cfg.Redis.URL)
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env = %q, want production", cfg.App.Env)
	}
	if got := cfg.HTTPAddress(); got != ":9090" {
		t.Errorf("HTTPAddress = %q, want :9090", got)
	}
	if got := cfg.ProbeTimeout(); got != 2*time.Second {
		t.Errorf("ProbeTimeout = %v, want 2s", got)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("http:\n  port: \"7070\"\napp:\n  env: staging\nredis:\n  addr: redis:6379\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	// env still wins over the file
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != "7070" {
		t.Errorf("HTTP.Port = %q, want 7070", cfg.HTTP.Port)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("Redis.Addr = %q, want redis:6379", cfg.Redis.Addr)
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env = %q, want production (env override)", cfg.App.Env)
	}
}

func TestHTTPAddress(t *testing.T) {
	tests := []struct {
		port string
		want string
	}{
		{"8080", ":8080"},
		{":8080", ":8080"},
		{" 9001 ", ":9001"},
		{"", ":8080"},
	}

	for _, tt := range tests {
		cfg := &Config{}
		cfg.HTTP.Port = tt.port
		if got := cfg.HTTPAddress(); got != tt.want {
			t.Errorf("HTTPAddress(%q) = %q, want %q", tt.port, got, tt.want)
		}
	}
}
