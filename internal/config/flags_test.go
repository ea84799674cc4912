package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
		wantErr  bool
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-d", "notes.db",
				"-k", "notes.key",
				"-log-file", "client.log",
				"-max-attempts", "7",
				"-attempt-interval", "45s",
				"-c", "cfg.json",
			},
			expected: &StructuredConfig{
				App:          App{LogFile: "client.log"},
				Storage:      Storage{DSN: "notes.db", KeyFile: "notes.key"},
				Auth:         Auth{MaxAttempts: 7, AttemptInterval: 45 * time.Second},
				JSONFilePath: "cfg.json",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "alias.json"},
			expected: &StructuredConfig{
				JSONFilePath: "alias.json",
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"-unknown"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			args:    []string{"-attempt-interval", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
