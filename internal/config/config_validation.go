// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged and defaulted configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.KeyFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.MaxAttempts < 1 || cfg.Auth.AttemptInterval <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
