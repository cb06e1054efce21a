// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as version and log file.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence settings of the activity server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the activity server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the activity server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// UI holds the terminal client's presentation timings.
	UI UI `envPrefix:"UI_"`

	// Workers holds background worker settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the server storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the activity store: empty keeps activities in memory,
	// a postgres:// or postgresql:// URI uses PostgreSQL, anything else is
	// treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the activity server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings the client uses to reach the activity server.
type Adapter struct {
	// HTTPAddress is the base URL (or host:port) of the activity server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// UI holds the status-region timings of the terminal client.
type UI struct {
	// SuccessDelay is how long a success message stays visible.
	// Env: UI_SUCCESS_DELAY
	SuccessDelay time.Duration `env:"SUCCESS_DELAY"`

	// ErrorDelay is how long an error message stays visible.
	// Env: UI_ERROR_DELAY
	ErrorDelay time.Duration `env:"ERROR_DELAY"`
}

// Workers holds configuration for background workers of the client.
type Workers struct {
	// RefreshInterval is the period of the background catalog reload.
	// Zero disables it.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// using args as the command-line arguments (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
