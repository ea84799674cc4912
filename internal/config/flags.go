package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client flags from args.
//
// Flags:
//
//	-d                 secure store DSN (sqlite path, file://path, :memory:)
//	-k                 device key file path
//	-log-file          log file path
//	-max-attempts      PIN attempts allowed in a burst
//	-attempt-interval  time to regain one PIN attempt (e.g. "30s")
//	-c/-config         json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("secure-notes", flag.ContinueOnError)

	var dsn, keyFile, logFile, jsonConfigPath string
	var maxAttempts int
	var attemptInterval time.Duration

	fs.StringVar(&dsn, "d", "", "Secure store DSN")
	fs.StringVar(&keyFile, "k", "", "Device key file path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "PIN attempts allowed in a burst")
	fs.DurationVar(&attemptInterval, "attempt-interval", 0, "Time to regain one PIN attempt (e.g., 30s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DSN:     dsn,
			KeyFile: keyFile,
		},
		Auth: Auth{
			MaxAttempts:     maxAttempts,
			AttemptInterval: attemptInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
