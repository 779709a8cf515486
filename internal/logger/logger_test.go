package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"tokens": "fundraise.yaml", "phase": "load"})
	log.Info("loading tokens")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "loading tokens", entry["message"])
	require.Equal(t, "fundraise.yaml", entry["tokens"])
	require.Equal(t, "load", entry["phase"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "app/globals.css"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "app/globals.css", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerLogPairs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Log(zerolog.WarnLevel, "color substituted", "token", "primary", "mode", "light", 42, "ignored", "error", errors.New("invalid color format"), "index", 3)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "color substituted", entry["message"])
	require.Equal(t, "primary", entry["token"])
	require.Equal(t, "light", entry["mode"])
	require.Equal(t, "invalid color format", entry["error"])
	require.Equal(t, float64(3), entry["index"])
}

func TestLoggerEnabled(t *testing.T) {
	t.Parallel()

	log, err := New(Options{Level: "warn", Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	require.False(t, log.Enabled(zerolog.InfoLevel))
	require.True(t, log.Enabled(zerolog.ErrorLevel))

	var nilLogger *Logger
	require.False(t, nilLogger.Enabled(zerolog.ErrorLevel))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}
