package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	logginginfra "github.com/fundraise-pro/themegen/internal/infrastructure/logging"
	"github.com/fundraise-pro/themegen/internal/ports"
)

const testTokens = `name: CLI Test
output: app/globals.css
light:
  background: "#FFFFFF"
  primary: "#F97316"
  cardForeground: "#000000"
dark:
  background: "#000000"
  primary: "#FB923C"
  cardForeground: "#FFFFFF"
design:
  radius:
    base: 0.625rem
  shadow:
    color: "#000000"
    opacity: 0.1
    blur: 3px
    spread: 0px
    offsetX: 0px
    offsetY: 1px
  fonts:
    sans: Inter, sans-serif
    serif: Georgia, serif
    mono: JetBrains Mono, monospace
  letterSpacing:
    normal: 0em
  spacing:
    base: 0.25rem
gradients:
  primary: "linear-gradient(135deg, #F97316 0%, #EA580C 100%)"
components:
  kpiCards:
    blue:
      bg: "#DBEAFE"
`

type testApp struct {
	app    *AppContext
	logs   *bytes.Buffer
	events *recordingPublisher
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	logs := &bytes.Buffer{}
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    logs,
		Format:    logginginfra.FormatJSON,
		Level:     "debug",
		Layer:     "cli",
		Component: "themegen",
	})
	require.NoError(t, err)

	events := &recordingPublisher{}
	app := &AppContext{Logger: logger, Events: events}
	return testApp{app: app, logs: logs, events: events}
}

func writeTestTokens(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	return executeCommandContext(context.Background(), cmd, args...)
}

func executeCommandContext(ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func stubExit(t *testing.T) *int {
	t.Helper()
	code := -1
	original := exitFunc
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = original })
	return &code
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventRecord
}

type eventRecord struct {
	eventType     string
	payload       map[string]interface{}
	correlationID string
}

func (r *recordingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if event == nil {
		return nil
	}
	payload, _ := event.Payload().(map[string]interface{})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventRecord{
		eventType:     event.EventType(),
		payload:       payload,
		correlationID: ports.GetCorrelationID(ctx),
	})
	return nil
}

func (r *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return noopSubscription{}, nil
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.events))
	for _, evt := range r.events {
		types = append(types, evt.eventType)
	}
	return types
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}
