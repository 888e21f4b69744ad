package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebastiantruijens/moviedeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Logging{Level: "warn"}, &buf)

	log.Info("hidden")
	log.Warn("shown", "component", "store")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "component=store")
	// Not a terminal, so no escape codes
	assert.NotContains(t, out, "\x1b[")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Logging{Level: "debug", Format: "json"}, &buf)

	log.Debug("movies loaded", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "movies loaded", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, closer, err := OpenFile(config.Logging{File: path, Level: "info"})
	require.NoError(t, err)
	log.Info("hello file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestOpenFileError(t *testing.T) {
	_, _, err := OpenFile(config.Logging{File: filepath.Join(t.TempDir(), "missing", "app.log")})
	assert.Error(t, err)
}
