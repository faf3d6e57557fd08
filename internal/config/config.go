// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers defaults, an optional YAML file and FAIRFOUND_* env vars.
// - External errors are wrapped with this package's sentinels.
package config

import (
	"context"
	"time"
)

// Data source strategies.
const (
	SourceLive = "live"
	SourceMock = "mock"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log records.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// APIBaseURL is the FairFound backend base, without a trailing slash.
	APIBaseURL string `koanf:"api_base_url"`

	// DataSource selects live (backend with mock fallback) or mock (no backend).
	DataSource string `koanf:"data_source"`

	// MockDelayMS is the simulated latency of mock comparisons.
	MockDelayMS int `koanf:"mock_delay_ms"`

	// BackendTimeoutMS bounds each backend call; 0 means no timeout.
	BackendTimeoutMS int `koanf:"backend_timeout_ms"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":9080",
		APIBaseURL:       "http://localhost:8000/api",
		DataSource:       SourceLive,
		MockDelayMS:      600,
		BackendTimeoutMS: 0,
	}
}

// MockDelay returns MockDelayMS as a duration.
func (c *Config) MockDelay() time.Duration {
	return time.Duration(c.MockDelayMS) * time.Millisecond
}

// BackendTimeout returns BackendTimeoutMS as a duration.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.BackendTimeoutMS) * time.Millisecond
}

// UseMock reports whether the mock-only strategy is configured.
func (c *Config) UseMock() bool {
	return c.DataSource == SourceMock
}
