// Package config provides centralized configuration for Worklog runtime values.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Server configuration
	Server ServerConfig

	// Storage configuration
	Storage StorageConfig

	// Export configuration
	Export ExportConfig
}

// ServerConfig holds HTTP API server configuration.
type ServerConfig struct {
	// ListenAddr is the address the API server binds to.
	// Default: ":8080"
	ListenAddr string

	// ReadTimeout is the maximum duration for reading a request.
	// Default: 15s
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out a response.
	// Default: 30s
	WriteTimeout time.Duration

	// ShutdownTimeout is the drain timeout for graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Path is the database directory. Empty string means the XDG default;
	// ":memory:" selects in-memory mode.
	Path string
}

// ExportConfig holds CSV export configuration.
type ExportConfig struct {
	// SpanCapMonths is the maximum permitted export range in calendar months.
	// Default: 12
	SpanCapMonths int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Path: "",
		},
		Export: ExportConfig{
			SpanCapMonths: 12,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("WORKLOG_LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv("WORKLOG_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.ReadTimeout = d
		}
	}
	if v := os.Getenv("WORKLOG_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.WriteTimeout = d
		}
	}
	if v := os.Getenv("WORKLOG_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}
	if v := os.Getenv("WORKLOG_DATABASE"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("WORKLOG_EXPORT_SPAN_MONTHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Export.SpanCapMonths = n
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
