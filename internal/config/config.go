// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultShutdownTimeout bounds the graceful stop when none is configured.
	DefaultShutdownTimeout = 30 * time.Second
	// DefaultAppName is reported by the version endpoint and in logs.
	DefaultAppName = "go-port-keeper"
	// DefaultLogLevel is applied when no level is configured.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container for the
// go-port-keeper server. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the name, version and
	// log level.
	App App `envPrefix:"APP_"`

	// Server holds the endpoints to bind and the shutdown settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name identifies the running service in logs and on /api/version.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds the endpoints the server binds and how it shuts down.
type Server struct {
	// Endpoints lists the addresses to bind, in bind order. Accepted forms:
	// "host:port", "http://host:port", "grpc://host:port",
	// "http+unix:///path.sock" and "grpc+unix:///path.sock".
	// Env: SERVER_ENDPOINTS (comma separated)
	Endpoints []string `env:"ENDPOINTS" envSeparator:","`

	// ShutdownTimeout bounds the graceful stop. When it elapses, remaining
	// connections are aborted. Unset means DefaultShutdownTimeout.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxConnections caps open connections per endpoint. 0 means unlimited.
	// A localhost endpoint is capped separately on IPv4 and IPv6.
	// Env: SERVER_MAX_CONNECTIONS
	MaxConnections int `env:"MAX_CONNECTIONS"`

	// StopConcurrency caps how many transports are unbound or stopped at
	// once. 0 means all at once.
	// Env: SERVER_STOP_CONCURRENCY
	StopConcurrency int `env:"STOP_CONCURRENCY"`

	// ReadHeaderTimeout is the time allowed to read HTTP request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// setDefaults fills in the settings left empty by every source.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.Name == "" {
		cfg.App.Name = DefaultAppName
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}
