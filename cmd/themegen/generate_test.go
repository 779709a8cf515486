package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundraise-pro/themegen/internal/ports"
	"github.com/fundraise-pro/themegen/internal/stylesheet"
)

func TestGenerateCommandWritesStylesheet(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	tokens := writeTestTokens(t, testTokens)
	outPath := filepath.Join(t.TempDir(), "app", "globals.css")

	out, err := executeCommand(newRootCmd(ta.app), "generate", "--tokens", tokens, "--output", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+outPath)
	require.Contains(t, out, "oklch")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	scopes, err := stylesheet.Scopes(string(data))
	require.NoError(t, err)
	require.Equal(t, "oklch(0.7049 0.1867 47.5992)", scopes[":root"]["primary"])
	require.NotEqual(t, scopes[":root"]["primary"], scopes[".dark"]["primary"])
	require.Equal(t, "#DBEAFE", scopes[":root"]["kpi-cards-blue-bg"])

	require.Equal(t, []string{ports.EventGenerationStarted, ports.EventGenerationCompleted}, ta.events.types())
}

func TestGenerateCommandStdout(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	outPath := filepath.Join(t.TempDir(), "globals.css")

	out, err := executeCommand(newRootCmd(ta.app), "generate", "--tokens", writeTestTokens(t, testTokens), "--output", outPath, "--stdout")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "/*"))
	require.Contains(t, out, "@custom-variant dark")
	require.NoError(t, stylesheet.Check(out))

	_, statErr := os.Stat(outPath)
	require.True(t, os.IsNotExist(statErr), "stdout mode must not write the file")
}

func TestGenerateCommandReportsSubstitutions(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	tokens := writeTestTokens(t, strings.Replace(testTokens, `primary: "#F97316"`, `primary: "##db2727"`, 1))

	out, err := executeCommand(newRootCmd(ta.app), "generate", "--tokens", tokens, "--output", filepath.Join(t.TempDir(), "globals.css"))
	require.NoError(t, err)
	require.Contains(t, out, "1 malformed color(s)")
	require.Contains(t, out, `light primary = "##db2727"`)
	require.Contains(t, ta.events.types(), ports.EventTokenSubstituted)
}

func TestGenerateCommandRejectsBadOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing tokens file", []string{"generate", "--tokens", "/path/does/not/exist.yaml"}, "does not exist"},
		{"tokens path is a directory", []string{"generate", "--tokens", "."}, "directory"},
		{"unknown conversion", []string{"generate", "--conversion", "lab"}, "unknown conversion method"},
		{"unexpected argument", []string{"generate", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ta := newTestApp(t)
			_, err := executeCommand(newRootCmd(ta.app), tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateCommandAsymmetricTableFails(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	tokens := writeTestTokens(t, strings.Replace(testTokens, "  primary: \"#FB923C\"\n", "", 1))

	_, err := executeCommand(newRootCmd(ta.app), "generate", "--tokens", tokens, "--output", filepath.Join(t.TempDir(), "globals.css"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "ASYMMETRIC_TOKENS")
	require.Contains(t, ta.events.types(), ports.EventGenerationFailed)
}

func TestValidateSourceOptions(t *testing.T) {
	t.Parallel()

	t.Run("empty options use the embedded table", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validateSourceOptions(sourceOptions{}))
	})

	t.Run("existing file is accepted", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validateSourceOptions(sourceOptions{TokensPath: writeTestTokens(t, testTokens), Conversion: "approximate"}))
	})

	t.Run("output naming a directory is rejected", func(t *testing.T) {
		t.Parallel()
		err := validateSourceOptions(sourceOptions{OutputPath: "app" + string(os.PathSeparator)})
		require.Error(t, err)
		require.Contains(t, err.Error(), "directory")
	})
}
