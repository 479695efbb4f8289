// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// family organizer sync daemon. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Account identifies whose data this device synchronizes and carries
	// the bearer token of the already-established session.
	Account Account `envPrefix:"ACCOUNT_"`

	// Storage holds the local SQLite store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote backend address and request timeout used by
	// the entity gateways.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the sync engine tunables: background interval, retry
	// ceiling, status display delay, and connectivity probe settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Status holds the local status endpoint settings.
	Status Status `envPrefix:"STATUS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Account identifies the synchronized account and its session.
type Account struct {
	// ID is the backend account identifier all local records belong to.
	// Env: ACCOUNT_ID
	ID string `env:"ID"`

	// Token is the bearer token of the current session. Authentication
	// itself happens outside this process; the sync daemon only consumes
	// the resulting token.
	// Env: ACCOUNT_TOKEN
	Token string `env:"TOKEN"`
}

// Storage holds local database settings.
type Storage struct {
	// DSN is the SQLite file path of the on-device store
	// (e.g. "~/.organizer/local.db").
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the remote backend the entity gateways
// talk to.
type Adapter struct {
	// HTTPAddress is the base address of the backend REST API,
	// in "host:port" or full URL format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the sync engine tunables.
type Sync struct {
	// Interval defines how often the background worker runs a full sync.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// RetryLimit is the push retry ceiling: a pending change whose push has
	// failed this many times is discarded on the next flush.
	// Env: SYNC_RETRY_LIMIT
	RetryLimit int `env:"RETRY_LIMIT"`

	// CompletedDisplayDelay is how long the "completed" status stays
	// visible before resetting to idle.
	// Env: SYNC_COMPLETED_DISPLAY_DELAY
	CompletedDisplayDelay time.Duration `env:"COMPLETED_DISPLAY_DELAY"`

	// ProbeInterval defines how often the connectivity monitor probes the
	// backend host.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single connectivity probe dial.
	// Env: SYNC_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Status holds settings of the local HTTP endpoint serving the observable
// sync status to the UI process.
type Status struct {
	// Address is the TCP address the status endpoint listens on,
	// in "host:port" format (e.g. "127.0.0.1:7040").
	// Env: STATUS_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults for anything still unset
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig is the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Sync: Sync{
			Interval:              5 * time.Minute,
			RetryLimit:            5,
			CompletedDisplayDelay: 3 * time.Second,
			ProbeInterval:         15 * time.Second,
			ProbeTimeout:          3 * time.Second,
		},
		Status: Status{
			Address: "127.0.0.1:7040",
		},
	}
}
