// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the Longbridge OpenAPI credentials plus basic server
// settings. Credentials are read from the same LONGPORT_* variables the
// official SDKs use.
type Config struct {
	AppKey      string `env:"LONGPORT_APP_KEY"`
	AppSecret   string `env:"LONGPORT_APP_SECRET"`
	AccessToken string `env:"LONGPORT_ACCESS_TOKEN"`

	// Logging settings
	LogLevel string `env:"LONGBRIDGE_LOG_LEVEL"`

	// Service identification
	ServiceName    string `env:"LONGBRIDGE_SERVICE_NAME"`
	ServiceVersion string `env:"LONGBRIDGE_SERVICE_VERSION"`
}

// Load builds a Config from defaults, an optional .env file, and the
// process environment, then validates it.
func Load(envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		ServiceName:    "mcp-longbridge",
		ServiceVersion: "dev",
	}
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("LONGPORT_APP_KEY"); v != "" {
		cfg.AppKey = v
	}
	if v := os.Getenv("LONGPORT_APP_SECRET"); v != "" {
		cfg.AppSecret = v
	}
	if v := os.Getenv("LONGPORT_ACCESS_TOKEN"); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv("LONGBRIDGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LONGBRIDGE_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("LONGBRIDGE_SERVICE_VERSION"); v != "" {
		cfg.ServiceVersion = v
	}
}

// Validate checks the essential fields. Credential checks happen here, not
// at process start: the configuration is only loaded when the first tool
// call needs a backend session.
func (c *Config) Validate() error {
	if c.AppKey == "" {
		return fmt.Errorf("LONGPORT_APP_KEY is required")
	}
	if c.AppSecret == "" {
		return fmt.Errorf("LONGPORT_APP_SECRET is required")
	}
	if c.AccessToken == "" {
		return fmt.Errorf("LONGPORT_ACCESS_TOKEN is required")
	}
	validLogLevels := []string{"debug", "info", "warn", "error"}
	valid := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
	return nil
}
