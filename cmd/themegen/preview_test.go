package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewCommandStatic(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	tokens := writeTestTokens(t, testTokens)

	light, err := executeCommand(newRootCmd(ta.app), "preview", "--static", "--tokens", tokens)
	require.NoError(t, err)
	require.Contains(t, light, "CLI Test")
	require.Contains(t, light, "--primary")
	require.Contains(t, light, "oklch(0.7049 0.1867 47.5992)")
	require.Contains(t, light, "--gradient-primary")
	require.Contains(t, light, "--kpi-cards-blue-bg")
	require.NotContains(t, light, "toggle light/dark")

	dark, err := executeCommand(newRootCmd(ta.app), "preview", "--static", "--tokens", tokens, "--mode", "dark")
	require.NoError(t, err)
	require.NotContains(t, dark, "oklch(0.7049 0.1867 47.5992)")
	require.Contains(t, dark, "Mode: dark")
}

func TestPreviewCommandRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	_, err := executeCommand(newRootCmd(ta.app), "preview", "--static", "--mode", "dim")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mode")
}
