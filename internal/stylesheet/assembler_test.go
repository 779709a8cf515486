package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundraise-pro/themegen/internal/colorspace"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

func testTheme(lightPrimary string) *theme.Theme {
	settings := theme.DefaultSettings()
	settings.Name = "Fundraise"
	return &theme.Theme{Source: "/tmp/config/tokens.yaml", Settings: settings, Table: testTable(lightPrimary)}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	conv, err := colorspace.ForMethod(colorspace.MethodOKLCH)
	require.NoError(t, err)

	result, err := Generate(Input{Theme: testTheme("#F97316"), Converter: conv})
	require.NoError(t, err)
	require.Empty(t, result.Substitutions)

	css := result.CSS
	require.True(t, strings.HasPrefix(css, "/*\n * Theme: Fundraise\n * Generated by themegen from tokens.yaml (oklch)."))
	require.Contains(t, css, "@import \"tailwindcss\";\n")
	require.Contains(t, css, "@custom-variant dark (&:is(.dark *));\n")
	require.Less(t, strings.Index(css, ":root {"), strings.Index(css, "@theme inline {"))
	require.Less(t, strings.Index(css, "@theme inline {"), strings.Index(css, ".dark {"))

	scopes, err := Scopes(css)
	require.NoError(t, err)
	require.Equal(t, "oklch(1.0000 0.0000 0.0000)", scopes[":root"]["background"])
	require.Equal(t, "oklch(0.0000 0.0000 0.0000)", scopes[".dark"]["background"])
	require.True(t, strings.HasPrefix(scopes[":root"]["primary"], "oklch(0.70"))
	require.Equal(t, "#10B981", scopes[":root"]["semantic-success"])
	require.NotContains(t, scopes[".dark"], "semantic-success")
	require.Equal(t, scopes[":root"]["radius"], scopes[".dark"]["radius"])
	require.Equal(t, "var(--primary)", scopes[ThemeInlineSelector]["color-primary"])

	for _, name := range []string{"background", "primary", "card-foreground"} {
		require.Contains(t, scopes[":root"], name)
		require.Contains(t, scopes[".dark"], name)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	t.Parallel()

	first, err := Generate(Input{Theme: testTheme("#F97316"), Converter: approximate(t)})
	require.NoError(t, err)
	second, err := Generate(Input{Theme: testTheme("#F97316"), Converter: approximate(t)})
	require.NoError(t, err)
	require.Equal(t, first.CSS, second.CSS)
}

func TestGenerateRecordsSubstitutions(t *testing.T) {
	t.Parallel()

	var seen []string
	result, err := Generate(Input{
		Theme:        testTheme("##db2727"),
		Converter:    approximate(t),
		OnSubstitute: func(s Substitution) { seen = append(seen, s.Token) },
	})
	require.NoError(t, err)
	require.Equal(t, []string{"primary"}, seen)
	require.Len(t, result.Substitutions, 1)

	value, ok := result.Document.Root.Lookup("primary")
	require.True(t, ok)
	require.Equal(t, "oklch(0.0000 0.0000 0.0000)", value)
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	conv := approximate(t)

	sameSelectors := testTheme("#FFFFFF")
	sameSelectors.Settings.DarkSelector = sameSelectors.Settings.RootSelector

	asymmetric := testTheme("#FFFFFF")
	asymmetric.Table = theme.NewTable(theme.TableData{
		Light: []theme.Entry{{Name: "background", Value: "#FFFFFF"}, {Name: "ring", Value: "#000000"}},
		Dark:  []theme.Entry{{Name: "background", Value: "#000000"}},
	})

	tests := []struct {
		name string
		in   Input
		code theme.ErrorCode
	}{
		{name: "no theme", in: Input{Converter: conv}, code: theme.ErrCodeValidation},
		{name: "no converter", in: Input{Theme: testTheme("#FFFFFF")}, code: theme.ErrCodeInternal},
		{name: "same selectors", in: Input{Theme: sameSelectors, Converter: conv}, code: theme.ErrCodeValidation},
		{name: "asymmetric", in: Input{Theme: asymmetric, Converter: conv}, code: theme.ErrCodeAsymmetric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Build(tt.in)
			require.Error(t, err)
			require.True(t, theme.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestAssembleWithoutTailwind(t *testing.T) {
	t.Parallel()

	doc := Document{
		Name:         "Plain",
		Method:       colorspace.MethodOKLCH,
		Imports:      []string{"./fonts.css"},
		DarkSelector: ".dark",
		Root:         Block{Selector: ":root", Declarations: []Declaration{{Name: "a", Value: "1"}}},
		Aliases:      Block{Selector: ThemeInlineSelector},
		Dark:         Block{Selector: ".dark", Declarations: []Declaration{{Name: "a", Value: "2"}}},
	}

	css := Assemble(doc)
	require.Contains(t, css, "@import \"./fonts.css\";\n")
	require.NotContains(t, css, "@custom-variant")
	require.Contains(t, css, "Generated by themegen (oklch).")
	require.NoError(t, Check(css))
}

func TestHeaderSanitizesCommentTerminator(t *testing.T) {
	t.Parallel()

	css := Assemble(Document{Name: "evil */ name", Method: "oklch", Root: Block{Selector: ":root"}, Aliases: Block{Selector: ThemeInlineSelector}, Dark: Block{Selector: ".dark"}})
	require.Contains(t, css, "evil * / name")
	require.NoError(t, Check(css))
}
