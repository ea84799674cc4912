package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func testBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// sources yields a fully defaulted config.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := testBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultKeyFile, cfg.Storage.KeyFile)
	assert.Equal(t, DefaultMaxAttempts, cfg.Auth.MaxAttempts)
	assert.Equal(t, DefaultAttemptInterval, cfg.Auth.AttemptInterval)
	assert.Empty(t, cfg.App.LogFile)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := testBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later config overrides non-zero
// fields of an earlier one and keeps fields it leaves empty.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DSN: "env.db", KeyFile: "env.key"}},
		&StructuredConfig{Storage: Storage{DSN: "flag.db"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DSN)
	assert.Equal(t, "env.key", cfg.Storage.KeyFile)
}

func TestBuild_InvalidAuthConfig(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{MaxAttempts: -1}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_DSN", "env.db")
	t.Setenv("AUTH_MAX_ATTEMPTS", "9")

	b := testBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.db", b.configs[0].Storage.DSN)
	assert.Equal(t, 9, b.configs[0].Auth.MaxAttempts)
	assert.NoError(t, b.err)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("AUTH_MAX_ATTEMPTS", "nine")

	b := testBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := testBuilder("-d", "flag.db", "-max-attempts", "2")
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag.db", b.configs[0].Storage.DSN)
	assert.Equal(t, 2, b.configs[0].Auth.MaxAttempts)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := testBuilder("-nope").withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DSN = "json.db"
	payload.Auth.AttemptInterval = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DSN)
	assert.Equal(t, time.Minute, b.configs[1].Auth.AttemptInterval)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestBuilder_FullChain verifies env < flags < json priority end to end.
func TestBuilder_FullChain(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.KeyFile = "json.key"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("STORAGE_DSN", "env.db")
	t.Setenv("STORAGE_KEY_FILE", "env.key")
	t.Setenv("APP_LOG_FILE", "env.log")

	cfg, err := testBuilder("-d", "flag.db", "-c", path).
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DSN)
	assert.Equal(t, "json.key", cfg.Storage.KeyFile)
	assert.Equal(t, "env.log", cfg.App.LogFile)
	assert.Equal(t, path, cfg.JSONFilePath)
}
