package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/stylesheet"
	"github.com/fundraise-pro/themegen/internal/themeswitch"
)

const (
	lightPrimary = "oklch(0.7049 0.1867 47.5992)"
	darkPrimary  = "oklch(0.7576 0.1590 55.9302)"
)

func newTestModel(t *testing.T, initial theme.Mode) (Model, *themeswitch.Switch) {
	t.Helper()
	sw := themeswitch.New(initial, nil)
	resolver := themeswitch.NewResolver(sw,
		map[string]string{"primary": lightPrimary, "radius": "0.625rem", "kpi-cards-blue-bg": "#DBEAFE"},
		map[string]string{"primary": darkPrimary},
	)
	m := NewModel(context.Background(), sw, resolver, Options{
		Title:      "Fundraise",
		Source:     "tokens.yaml",
		Properties: []string{"primary", "kpi-cards-blue-bg", "sidebar"},
	})
	return m, sw
}

func TestProperties(t *testing.T) {
	t.Parallel()

	doc := stylesheet.Document{Root: stylesheet.Block{Selector: ":root"}}
	doc.Root.Add("background", "oklch(1.0000 0.0000 0.0000)")
	doc.Root.Add("radius", "0.625rem")
	doc.Root.Add("font-sans", "Inter, sans-serif")
	doc.Root.Add("shadow", "0px 1px 3px 0px hsl(0 0% 0% / 0.1)")
	doc.Root.Add("gradient-primary", "linear-gradient(135deg, #F97316 0%, #EA580C 100%)")
	doc.Root.Add("kpi-cards-blue-bg", "#DBEAFE")

	require.Equal(t, []string{"background", "gradient-primary", "kpi-cards-blue-bg"}, Properties(doc))
}

func TestNewModelCopiesProperties(t *testing.T) {
	t.Parallel()

	sw := themeswitch.New(theme.ModeLight, nil)
	props := []string{"primary"}
	m := NewModel(nil, sw, themeswitch.NewResolver(sw, nil, nil), Options{Properties: props})
	props[0] = "changed"

	require.Equal(t, []string{"primary"}, m.properties)
	require.NotNil(t, m.ctx)
	require.Equal(t, theme.ModeLight, m.Mode())
}
