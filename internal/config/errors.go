package config

import "errors"

// Validation errors returned when the final configuration is unusable.
var (
	// ErrInvalidStorageConfigs indicates a missing DSN or device key path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates a non-positive attempt burst or
	// refill interval.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
