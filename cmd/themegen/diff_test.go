package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffCommand(t *testing.T) {
	code := stubExit(t)

	ta := newTestApp(t)
	tokens := writeTestTokens(t, testTokens)
	outPath := filepath.Join(t.TempDir(), "globals.css")

	out, err := executeCommand(newRootCmd(ta.app), "diff", "--tokens", tokens, "--output", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "does not exist")
	require.Equal(t, 1, *code)

	*code = -1
	_, err = executeCommand(newRootCmd(ta.app), "generate", "--tokens", tokens, "--output", outPath)
	require.NoError(t, err)

	out, err = executeCommand(newRootCmd(ta.app), "diff", "--tokens", tokens, "--output", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "is up to date")
	require.Equal(t, -1, *code)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(outPath, append(data, []byte("/* local edit */\n")...), 0o644))

	out, err = executeCommand(newRootCmd(ta.app), "diff", "--tokens", tokens, "--output", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "--- "+outPath)
	require.Contains(t, out, "+++ generated")
	require.Contains(t, out, "-/* local edit */")
	require.Contains(t, out, "is stale (+0 -1 lines)")
	require.Equal(t, 1, *code)
}
