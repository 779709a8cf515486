package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundraise-pro/themegen/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Format:    FormatJSON,
		Layer:     "infrastructure",
		Component: "yaml_loader",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "loaded tokens", "path", "/tmp/tokens.yaml")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "infrastructure", entries[0]["layer"])
	require.Equal(t, "yaml_loader", entries[0]["component"])
	require.Equal(t, "abc123", entries[0]["correlation_id"])
	require.Equal(t, "/tmp/tokens.yaml", entries[0]["path"])
	require.Equal(t, "loaded tokens", entries[0]["message"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: FormatJSON})
	require.NoError(t, err)

	child := logger.With("component", "emitter")
	child.Warn(context.Background(), "color substituted", "token", "primary", "error", errors.New("bad hex"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "emitter", entries[0]["component"])
	require.Equal(t, "primary", entries[0]["token"])
	require.Equal(t, "bad hex", entries[0]["error"])
	require.Equal(t, "warn", entries[0]["level"])
	require.NotContains(t, entries[0], "correlation_id")
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn", Format: FormatJSON})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	logger.Error(context.Background(), "shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "shown", entries[0]["message"])
}

func TestLoggerConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: FormatConsole})
	require.NoError(t, err)

	logger.Info(context.Background(), "stylesheet written", "path", "app/globals.css")
	out := buf.String()
	require.Contains(t, out, "stylesheet written")
	require.Contains(t, out, "path=app/globals.css")
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Format: "xml"})
	require.Error(t, err)

	_, err = New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestMergeFieldsOverridesInPlace(t *testing.T) {
	t.Parallel()

	merged := mergeFields(
		[]interface{}{"component", "loader", "path", "a.yaml"},
		[]interface{}{"path", "b.yaml", 7, "skipped"},
		map[string]interface{}{"layer": "application", "correlation_id": ""},
	)
	require.Equal(t, []interface{}{"component", "loader", "path", "b.yaml", "layer", "application"}, merged)
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	logger := NewNoOpLogger()
	require.NotPanics(t, func() {
		logger.Info(context.Background(), "ignored", "k", "v")
		logger.With("k", "v").Error(context.Background(), "ignored")
	})
}

func TestBufferedLoggerFlushesInOrder(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(2)
	buffered := NewBufferedLogger(buffer).With("component", "preview")
	buffered.Info(context.Background(), "first")
	buffered.Warn(context.Background(), "second")
	buffered.Error(context.Background(), "third")
	require.Equal(t, 2, buffer.Len())

	var buf bytes.Buffer
	target, err := New(Options{Writer: &buf, Level: "debug", Format: FormatJSON})
	require.NoError(t, err)
	buffer.Flush(target)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	require.Equal(t, "second", entries[0]["message"])
	require.Equal(t, "third", entries[1]["message"])
	require.Equal(t, "preview", entries[1]["component"])
	require.Equal(t, 0, buffer.Len())
}

func TestBufferedLoggerChildFieldsDoNotLeak(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(0)
	parent := NewBufferedLogger(buffer).With("component", "theme_switch")
	parent.With("mode", "dark").Info(context.Background(), "toggled")
	parent.Info(context.Background(), "idle")

	var buf bytes.Buffer
	target, err := New(Options{Writer: &buf, Level: "debug", Format: FormatJSON})
	require.NoError(t, err)
	buffer.Flush(target)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	require.Equal(t, "dark", entries[0]["mode"])
	require.NotContains(t, entries[1], "mode")
	require.Equal(t, "theme_switch", entries[1]["component"])
}
