package config

import (
	"fmt"
	"strings"
	"time"
)

// Config defines storepulse service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"HTTP_PORT"`
	} `yaml:"http"`
	App struct {
		Env string `yaml:"env" env:"APP_ENV"`
	} `yaml:"app"`
	Redis struct {
		// URL and Addr are alternative ways to name the same server;
		// URL wins when both are set.
		URL      string `yaml:"url" env:"REDIS_URL"`
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`
	Database struct {
		DSN string `yaml:"dsn" env:"POSTGRES_DSN"`
	} `yaml:"database"`
	Probe struct {
		TimeoutSeconds int `yaml:"timeoutSeconds" env:"PROBE_TIMEOUT_SECONDS"`
	} `yaml:"probe"`
}

// Load reads configuration from YAML/env via the shared loader.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.App.Env = "development"
	cfg.Probe.TimeoutSeconds = 5

	if err := load(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RedisConfigured reports whether either of the redis connection keys is set.
// Presence only; the value is not validated here.
func (c *Config) RedisConfigured() bool {
	return strings.TrimSpace(c.Redis.URL) != "" || strings.TrimSpace(c.Redis.Addr) != ""
}

// PostgresConfigured reports whether the optional database probe should run.
func (c *Config) PostgresConfigured() bool {
	return strings.TrimSpace(c.Database.DSN) != ""
}

// HTTPAddress ensures we always return host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// ProbeTimeout converts the configured probe timeout to a duration.
func (c *Config) ProbeTimeout() time.Duration {
	if c.Probe.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}
