package stylesheet

import (
	"math"
	"strings"

	"github.com/fundraise-pro/themegen/internal/colorspace"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

// ShadowColorToken names the design shadow color in substitution reports.
const ShadowColorToken = "design.shadow.color"

// Substitution records a color token that could not be converted and was
// rendered as the neutral color instead. Mode is empty for design tokens,
// which are shared by both modes.
type Substitution struct {
	Mode  theme.Mode
	Token string
	Value string
	Err   error
}

// Label names the substituted token, prefixed by its mode when it has one.
func (s Substitution) Label() string {
	if s.Mode == "" {
		return s.Token
	}
	return string(s.Mode) + " " + s.Token
}

// Emitter renders token groups into declarations.
type Emitter struct {
	conv         colorspace.Converter
	onSubstitute func(Substitution)
}

// NewEmitter returns an Emitter that converts colors with conv. onSubstitute
// may be nil.
func NewEmitter(conv colorspace.Converter, onSubstitute func(Substitution)) *Emitter {
	return &Emitter{conv: conv, onSubstitute: onSubstitute}
}

// Colors renders one oklch() declaration per color token of mode, in table
// order. Malformed values become the neutral color.
func (e *Emitter) Colors(table *theme.Table, mode theme.Mode) []Declaration {
	tokens := table.Tokens(mode)
	decls := make([]Declaration, 0, len(tokens))
	for _, tok := range tokens {
		derived, err := colorspace.ConvertOrNeutral(e.conv, tok.RawValue)
		if err != nil {
			e.substitute(Substitution{Mode: mode, Token: tok.Name, Value: tok.RawValue, Err: err})
		}
		decls = append(decls, Declaration{Name: Kebab(tok.Name), Value: derived.CSS()})
	}
	return decls
}

func (e *Emitter) substitute(s Substitution) {
	if e.onSubstitute != nil {
		e.onSubstitute(s)
	}
}

// Design renders the shared design tokens followed by the derived shadow
// scale. A malformed shadow color is reported once and rendered as neutral
// black in --shadow-color and in every step of the scale.
func (e *Emitter) Design(d theme.Design) []Declaration {
	shadowColor, err := colorspace.HSL(d.Shadow.Color)
	if err != nil {
		shadowColor = colorspace.NeutralHSL
		e.substitute(Substitution{Token: ShadowColorToken, Value: d.Shadow.Color, Err: err})
	}

	decls := []Declaration{
		{Name: "radius", Value: d.Radius.Base},
		{Name: "font-sans", Value: d.Fonts.Sans},
		{Name: "font-serif", Value: d.Fonts.Serif},
		{Name: "font-mono", Value: d.Fonts.Mono},
		{Name: "shadow-color", Value: shadowColor},
		{Name: "shadow-opacity", Value: theme.FormatOpacity(d.Shadow.Opacity)},
		{Name: "shadow-blur", Value: d.Shadow.Blur},
		{Name: "shadow-spread", Value: d.Shadow.Spread},
		{Name: "shadow-offset-x", Value: d.Shadow.OffsetX},
		{Name: "shadow-offset-y", Value: d.Shadow.OffsetY},
		{Name: "letter-spacing", Value: d.LetterSpacing.Normal},
		{Name: "spacing", Value: d.Spacing.Base},
	}
	decls = append(decls, shadowScale(d.Shadow, shadowColor)...)
	decls = append(decls, Declaration{Name: "tracking-normal", Value: d.LetterSpacing.Normal})
	return decls
}

// shadowStep describes one entry of the shadow scale: the opacity multiplier
// of the primary layer and the optional secondary layer geometry.
type shadowStep struct {
	name      string
	factor    float64
	secondary string
}

var shadowSteps = []shadowStep{
	{name: "shadow-2xs", factor: 0.5},
	{name: "shadow-xs", factor: 0.5},
	{name: "shadow-sm", factor: 1, secondary: "0px 1px 2px -4px"},
	{name: "shadow", factor: 1, secondary: "0px 1px 2px -4px"},
	{name: "shadow-md", factor: 1, secondary: "0px 2px 4px -4px"},
	{name: "shadow-lg", factor: 1, secondary: "0px 4px 6px -4px"},
	{name: "shadow-xl", factor: 1, secondary: "0px 8px 10px -4px"},
	{name: "shadow-2xl", factor: 2.5},
}

// shadowScale derives the shadow-2xs … shadow-2xl declarations from the
// base shadow recipe, colored with base, an hsl() value.
func shadowScale(s theme.Shadow, base string) []Declaration {
	geometry := strings.Join([]string{s.OffsetX, s.OffsetY, s.Blur, s.Spread}, " ")

	decls := make([]Declaration, 0, len(shadowSteps))
	for _, step := range shadowSteps {
		alpha := theme.FormatOpacity(roundTo3(s.Opacity * step.factor))
		color := colorspace.WithAlpha(base, alpha)
		value := geometry + " " + color
		if step.secondary != "" {
			value += ", " + step.secondary + " " + color
		}
		decls = append(decls, Declaration{Name: step.name, Value: value})
	}
	return decls
}

// PassThrough renders gradients, semantic colors and component colors as
// literal values.
func PassThrough(table *theme.Table) []Declaration {
	var decls []Declaration
	for _, lit := range table.Gradients() {
		decls = append(decls, Declaration{Name: PathName("gradient", lit.Path), Value: lit.Value})
	}
	for _, lit := range table.Semantic() {
		decls = append(decls, Declaration{Name: PathName("semantic", lit.Path), Value: lit.Value})
	}
	for _, lit := range table.Components() {
		decls = append(decls, Declaration{Name: PathName("", lit.Path), Value: lit.Value})
	}
	return decls
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
