package config

import "time"

// Default values applied to fields left empty by every source.
const (
	DefaultDSN             = "notes.db"
	DefaultKeyFile         = "notes.key"
	DefaultMaxAttempts     = 5
	DefaultAttemptInterval = 30 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = DefaultDSN
	}
	if cfg.Storage.KeyFile == "" {
		cfg.Storage.KeyFile = DefaultKeyFile
	}
	if cfg.Auth.MaxAttempts == 0 {
		cfg.Auth.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Auth.AttemptInterval == 0 {
		cfg.Auth.AttemptInterval = DefaultAttemptInterval
	}
}
