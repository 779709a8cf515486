package config

import (
	"strings"

	"github.com/fundraise-pro/themegen/internal/colorspace"
	cfgpkg "github.com/fundraise-pro/themegen/internal/config"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

func mapToDomain(doc *cfgpkg.Document, source string) *theme.Theme {
	if doc == nil {
		return &theme.Theme{Source: source, Settings: theme.DefaultSettings(), Table: theme.NewTable(theme.TableData{})}
	}

	settings := theme.DefaultSettings()
	settings.Name = doc.Name
	if doc.Output != "" {
		settings.Output = doc.Output
	}
	if doc.Selectors.Root != "" {
		settings.RootSelector = doc.Selectors.Root
	}
	if doc.Selectors.Dark != "" {
		settings.DarkSelector = doc.Selectors.Dark
	}
	if doc.Conversion != "" {
		settings.Conversion = strings.ToLower(doc.Conversion)
	}
	if doc.Imports != nil {
		settings.Imports = append([]string(nil), doc.Imports...)
	}

	table := theme.NewTable(theme.TableData{
		Light:      toEntries(doc.Light),
		Dark:       toEntries(doc.Dark),
		Design:     toDesign(doc.Design),
		Gradients:  toLiterals(doc.Gradients, theme.KindLiteral),
		Semantic:   toLiterals(doc.Semantic, ""),
		Components: toLiterals(doc.Components, ""),
	})

	return &theme.Theme{Source: source, Settings: settings, Table: table}
}

func toEntries(pairs []cfgpkg.Pair) []theme.Entry {
	entries := make([]theme.Entry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, theme.Entry{Name: p.Key, Value: p.Value})
	}
	return entries
}

// toLiterals maps pass-through pairs. An empty kind infers color for hex
// values and literal for everything else.
func toLiterals(pairs []cfgpkg.Pair, kind theme.Kind) []theme.Literal {
	if len(pairs) == 0 {
		return nil
	}
	literals := make([]theme.Literal, 0, len(pairs))
	for _, p := range pairs {
		k := kind
		if k == "" {
			k = inferKind(p.Value)
		}
		literals = append(literals, theme.Literal{Path: p.Key, Value: p.Value, Kind: k})
	}
	return literals
}

func inferKind(value string) theme.Kind {
	if _, err := colorspace.ParseHex(value); err == nil {
		return theme.KindColor
	}
	return theme.KindLiteral
}

func toDesign(d cfgpkg.Design) theme.Design {
	return theme.Design{
		Radius: theme.Radius{
			Base: d.Radius.Base,
			SM:   d.Radius.SM,
			MD:   d.Radius.MD,
			LG:   d.Radius.LG,
			XL:   d.Radius.XL,
			Full: d.Radius.Full,
		},
		Shadow: theme.Shadow{
			Color:   d.Shadow.Color,
			Opacity: d.Shadow.Opacity,
			Blur:    d.Shadow.Blur,
			Spread:  d.Shadow.Spread,
			OffsetX: d.Shadow.OffsetX,
			OffsetY: d.Shadow.OffsetY,
		},
		Fonts: theme.Fonts{
			Sans:  d.Fonts.Sans,
			Serif: d.Fonts.Serif,
			Mono:  d.Fonts.Mono,
		},
		LetterSpacing: theme.LetterSpacing{
			Normal:  d.LetterSpacing.Normal,
			Tight:   d.LetterSpacing.Tight,
			Tighter: d.LetterSpacing.Tighter,
			Wide:    d.LetterSpacing.Wide,
			Wider:   d.LetterSpacing.Wider,
			Widest:  d.LetterSpacing.Widest,
		},
		Spacing: theme.Spacing{Base: d.Spacing.Base},
	}
}

func mapFromDomain(th *theme.Theme) *cfgpkg.Document {
	s := th.Settings
	doc := &cfgpkg.Document{
		Name:       s.Name,
		Output:     s.Output,
		Conversion: s.Conversion,
		Selectors:  cfgpkg.Selectors{Root: s.RootSelector, Dark: s.DarkSelector},
		Imports:    append([]string(nil), s.Imports...),
		Light:      fromTokens(th.Table.Tokens(theme.ModeLight)),
		Dark:       fromTokens(th.Table.Tokens(theme.ModeDark)),
		Design:     fromDesign(th.Table.Design()),
		Gradients:  cfgpkg.OrderedMap(fromLiterals(th.Table.Gradients())),
		Semantic:   cfgpkg.OrderedMap(fromLiterals(th.Table.Semantic())),
		Components: cfgpkg.ComponentTree(fromLiterals(th.Table.Components())),
	}
	return doc
}

func fromTokens(tokens []theme.Token) cfgpkg.OrderedMap {
	pairs := make(cfgpkg.OrderedMap, 0, len(tokens))
	for _, tok := range tokens {
		pairs = append(pairs, cfgpkg.Pair{Key: tok.Name, Value: tok.RawValue})
	}
	return pairs
}

func fromLiterals(literals []theme.Literal) []cfgpkg.Pair {
	if len(literals) == 0 {
		return nil
	}
	pairs := make([]cfgpkg.Pair, 0, len(literals))
	for _, lit := range literals {
		pairs = append(pairs, cfgpkg.Pair{Key: lit.Path, Value: lit.Value})
	}
	return pairs
}

func fromDesign(d theme.Design) cfgpkg.Design {
	return cfgpkg.Design{
		Radius: cfgpkg.Radius{
			Base: d.Radius.Base,
			SM:   d.Radius.SM,
			MD:   d.Radius.MD,
			LG:   d.Radius.LG,
			XL:   d.Radius.XL,
			Full: d.Radius.Full,
		},
		Shadow: cfgpkg.Shadow{
			Color:   d.Shadow.Color,
			Opacity: d.Shadow.Opacity,
			Blur:    d.Shadow.Blur,
			Spread:  d.Shadow.Spread,
			OffsetX: d.Shadow.OffsetX,
			OffsetY: d.Shadow.OffsetY,
		},
		Fonts: cfgpkg.Fonts{
			Sans:  d.Fonts.Sans,
			Serif: d.Fonts.Serif,
			Mono:  d.Fonts.Mono,
		},
		LetterSpacing: cfgpkg.LetterSpacing{
			Normal:  d.LetterSpacing.Normal,
			Tight:   d.LetterSpacing.Tight,
			Tighter: d.LetterSpacing.Tighter,
			Wide:    d.LetterSpacing.Wide,
			Wider:   d.LetterSpacing.Wider,
			Widest:  d.LetterSpacing.Widest,
		},
		Spacing: cfgpkg.Spacing{Base: d.Spacing.Base},
	}
}
