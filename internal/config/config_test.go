package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test so godotenv may set it
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"MOVIES_BASE_URL", "HTTP_TIMEOUT", "ALERT_TTL", "SEARCH_DEBOUNCE", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "LOG_SOURCE", "STUB_ADDR", "FIXTURE_PATH"} {
		unsetEnv(t, key)
	}

	cfg := FromEnv()
	assert.Equal(t, "https://webdev.alphacamp.io", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Second, cfg.UI.AlertTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.SearchDebounce)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "moviedeck.log", cfg.Logging.File)
	assert.False(t, cfg.Logging.AddSource)
	assert.Equal(t, ":8080", cfg.Stub.Addr)
	assert.Empty(t, cfg.Stub.FixturePath)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MOVIES_BASE_URL", "http://localhost:9000")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("ALERT_TTL", "1500")
	t.Setenv("SEARCH_DEBOUNCE", "not-a-duration")
	t.Setenv("LOG_SOURCE", "true")

	cfg := FromEnv()
	assert.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.AlertTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.SearchDebounce)
	assert.True(t, cfg.Logging.AddSource)
}

func TestLoadFromFile(t *testing.T) {
	unsetEnv(t, "MOVIES_BASE_URL")
	unsetEnv(t, "LOG_LEVEL")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MOVIES_BASE_URL=http://stub:8080\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load([]string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, "http://stub:8080", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "nope.env")})
	assert.Error(t, err)
}

func TestLoadBadFlag(t *testing.T) {
	_, err := Load([]string{"-unknown"})
	assert.Error(t, err)
}

func TestDurationFallbackIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	tests := []struct {
		value string
		want  string
	}{
		{value: "0s", want: "must be positive"},
		{value: "-5s", want: "must be positive"},
		{value: "0", want: "must be positive"},
		{value: "soon", want: "is not a duration"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			buf.Reset()
			t.Setenv("ALERT_TTL", tt.value)

			assert.Equal(t, time.Second, FromEnv().UI.AlertTTL)
			assert.Contains(t, buf.String(), "ALERT_TTL")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
