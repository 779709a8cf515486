package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwatchListEntriesAreCopied(t *testing.T) {
	t.Parallel()

	entries := []Swatch{{Property: "primary", Value: "#F97316"}}
	list := NewSwatchList(entries, 10)
	entries[0].Value = "changed"

	got := list.Entries()
	require.Equal(t, "#F97316", got[0].Value)
	got[0].Value = "changed again"
	require.Equal(t, "#F97316", list.Entries()[0].Value)
}

func TestSwatchListView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		swatch   Swatch
		contains []string
		excludes []string
	}{
		{
			name:     "oklch value shows lightness",
			swatch:   Swatch{Property: "primary", Value: "oklch(0.7049 0.1867 47.5992)"},
			contains: []string{"--primary", "oklch(0.7049 0.1867 47.5992)", "L 0.70"},
		},
		{
			name:     "hex literal shows lightness",
			swatch:   Swatch{Property: "--kpi-cards-blue-bg", Value: "#FFFFFF"},
			contains: []string{"--kpi-cards-blue-bg", "#FFFFFF", "L 1.00"},
		},
		{
			name:     "non-color value is printed as is",
			swatch:   Swatch{Property: "gradient-primary", Value: "linear-gradient(135deg, #F97316 0%, #EA580C 100%)"},
			contains: []string{"--gradient-primary", "linear-gradient("},
			excludes: []string{"L "},
		},
		{
			name:     "missing value is marked unset",
			swatch:   Swatch{Property: "sidebar"},
			contains: []string{"--sidebar", "(unset)"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewSwatchList([]Swatch{tt.swatch}, 10).View()
			for _, want := range tt.contains {
				require.Contains(t, view, want)
			}
			for _, unwanted := range tt.excludes {
				require.NotContains(t, view, unwanted)
			}
		})
	}
}

func TestSwatchListViewOneLinePerEntry(t *testing.T) {
	t.Parallel()

	list := NewSwatchList([]Swatch{
		{Property: "background", Value: "#FFFFFF"},
		{Property: "foreground", Value: "#000000"},
		{Property: "ring"},
	}, 10)
	require.Len(t, strings.Split(list.View(), "\n"), 3)
}

func TestLightnessClamps(t *testing.T) {
	t.Parallel()

	bar := NewLightness(10)
	require.Contains(t, bar.View(1.7), "L 1.00")
	require.Contains(t, bar.View(-0.2), "L 0.00")
	require.Contains(t, bar.View(0.5), "L 0.50")
}
