// Package config loads, merges and validates the client configuration.
//
// Sources are applied in this order (later non-zero fields override):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields still empty afterwards receive defaults. The entry point is
// [GetStructuredConfig].
package config
