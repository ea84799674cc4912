package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN     string `json:"dsn"`
		KeyFile string `json:"key_file"`
	} `json:"storage,omitempty"`

	Auth struct {
		MaxAttempts     int      `json:"max_attempts"`
		AttemptInterval Duration `json:"attempt_interval"`
	} `json:"auth,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DSN:     jsonCfg.Storage.DSN,
			KeyFile: jsonCfg.Storage.KeyFile,
		},
		Auth: Auth{
			MaxAttempts:     jsonCfg.Auth.MaxAttempts,
			AttemptInterval: time.Duration(jsonCfg.Auth.AttemptInterval),
		},
	}, nil
}

// Duration wraps time.Duration so JSON accepts both "30s" strings and
// integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
