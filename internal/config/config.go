// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the secure-notes
// client. It is populated by merging environment variables, command-line
// flags and an optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the secure store backend and device key settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds login throttling settings.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flags.
	// Env: CONFIG. Flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the client writes its JSON log. Stdout is owned by
	// the terminal UI. Empty means "logs" next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage holds secure store settings.
type Storage struct {
	// DSN selects the backend of the secure store:
	//   - a plain path (e.g. "notes.db") opens an SQLite database;
	//   - "file://<path>" uses a JSON file;
	//   - ":memory:" or "memory" keeps everything in process memory.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// KeyFile is the path of the 32-byte device key sealing every stored
	// value. Created with mode 0600 on first run.
	// Env: STORAGE_KEY_FILE
	KeyFile string `env:"KEY_FILE"`
}

// Auth holds authentication throttling settings.
type Auth struct {
	// MaxAttempts is the number of PIN attempts allowed in a burst.
	// Env: AUTH_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// AttemptInterval is how long it takes to regain one attempt.
	// Env: AUTH_ATTEMPT_INTERVAL
	AttemptInterval time.Duration `env:"ATTEMPT_INTERVAL"`
}

// GetStructuredConfig loads, merges, defaults and validates the client
// configuration. Sources are applied in order, later non-zero values win:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path taken from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
