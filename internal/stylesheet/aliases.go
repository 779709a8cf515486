package stylesheet

import (
	"strings"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

// ThemeInlineSelector is the scope Tailwind reads utility-class tokens from.
const ThemeInlineSelector = "@theme inline"

// Aliases builds the semantic aliasing block that exposes each variable to
// utility-class hooks. Names are emitted at most once.
func Aliases(table *theme.Table) Block {
	block := Block{Selector: ThemeInlineSelector}
	seen := make(map[string]struct{})
	add := func(name, value string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		block.Add(name, value)
	}

	for _, name := range table.ColorNames() {
		prop := Kebab(name)
		add("color-"+prop, varRef(prop))
	}
	for _, lit := range table.Semantic() {
		add("color-"+PathName("", lit.Path), varRef(PathName("semantic", lit.Path)))
	}
	add("color-shadow-color", varRef("shadow-color"))

	d := table.Design()
	add("radius-sm", d.Radius.SM)
	add("radius-md", d.Radius.MD)
	add("radius-lg", d.Radius.LG)
	add("radius-xl", d.Radius.XL)
	add("radius-full", d.Radius.Full)

	add("font-sans", d.Fonts.Sans)
	add("font-serif", d.Fonts.Serif)
	add("font-mono", d.Fonts.Mono)

	add("tracking-tighter", trackingCalc(d.LetterSpacing.Tighter))
	add("tracking-tight", trackingCalc(d.LetterSpacing.Tight))
	add("tracking-wide", trackingCalc(d.LetterSpacing.Wide))
	add("tracking-wider", trackingCalc(d.LetterSpacing.Wider))
	add("tracking-widest", trackingCalc(d.LetterSpacing.Widest))
	add("tracking-normal", varRef("tracking-normal"))

	for i := len(shadowSteps) - 1; i >= 0; i-- {
		add(shadowSteps[i].name, varRef(shadowSteps[i].name))
	}
	for _, name := range []string{"spacing", "letter-spacing", "shadow-offset-y", "shadow-offset-x", "shadow-spread", "shadow-blur", "shadow-opacity"} {
		add(name, varRef(name))
	}

	return block
}

func varRef(name string) string {
	return "var(--" + name + ")"
}

// trackingCalc expresses a tracking step relative to --tracking-normal.
func trackingCalc(delta string) string {
	delta = strings.TrimSpace(delta)
	switch {
	case delta == "":
		return varRef("tracking-normal")
	case strings.HasPrefix(delta, "-"):
		return "calc(" + varRef("tracking-normal") + " - " + delta[1:] + ")"
	default:
		return "calc(" + varRef("tracking-normal") + " + " + strings.TrimPrefix(delta, "+") + ")"
	}
}
