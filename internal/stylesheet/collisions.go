package stylesheet

import (
	"fmt"
	"strings"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

// designSources maps each design declaration to the document key it is read
// from. Shadow scale steps are all derived from design.shadow.
var designSources = map[string]string{
	"radius":          "design.radius.base",
	"font-sans":       "design.fonts.sans",
	"font-serif":      "design.fonts.serif",
	"font-mono":       "design.fonts.mono",
	"shadow-color":    "design.shadow.color",
	"shadow-opacity":  "design.shadow.opacity",
	"shadow-blur":     "design.shadow.blur",
	"shadow-spread":   "design.shadow.spread",
	"shadow-offset-x": "design.shadow.offsetX",
	"shadow-offset-y": "design.shadow.offsetY",
	"letter-spacing":  "design.letterSpacing.normal",
	"spacing":         "design.spacing.base",
	"tracking-normal": "design.letterSpacing.normal",
}

func designSource(prop string) string {
	if src, ok := designSources[prop]; ok {
		return src
	}
	return "design.shadow"
}

// CheckNames reports two document keys that would render to the same custom
// property in one scope. Kebab conversion is lossy ("chart1" and "chart-1"
// both become --chart-1), and component and color tokens share the root
// scope with the design properties (a color called "radius" would shadow
// --radius).
func CheckNames(table *theme.Table) error {
	if table == nil {
		return nil
	}

	design := (&Emitter{}).Design(table.Design())

	for _, mode := range theme.Modes {
		scope := newScope(string(mode))
		for _, tok := range table.Tokens(mode) {
			if err := scope.claim(Kebab(tok.Name), string(mode)+"."+tok.Name); err != nil {
				return err
			}
		}
		for _, decl := range design {
			if err := scope.claim(decl.Name, designSource(decl.Name)); err != nil {
				return err
			}
		}
		if mode != theme.ModeLight {
			continue
		}
		for _, lit := range table.Gradients() {
			if err := scope.claim(PathName("gradient", lit.Path), "gradients."+lit.Path); err != nil {
				return err
			}
		}
		for _, lit := range table.Semantic() {
			if err := scope.claim(PathName("semantic", lit.Path), "semantic."+lit.Path); err != nil {
				return err
			}
		}
		for _, lit := range table.Components() {
			if err := scope.claim(PathName("", lit.Path), "components."+lit.Path); err != nil {
				return err
			}
		}
	}

	// utility aliases: color tokens and semantic colors share the color- prefix
	aliases := newScope(ThemeInlineSelector)
	if err := aliases.claim("color-shadow-color", designSource("shadow-color")); err != nil {
		return err
	}
	for _, name := range table.ColorNames() {
		if err := aliases.claim("color-"+Kebab(name), "light."+name); err != nil {
			return err
		}
	}
	for _, lit := range table.Semantic() {
		if err := aliases.claim("color-"+PathName("", lit.Path), "semantic."+lit.Path); err != nil {
			return err
		}
	}

	return nil
}

type nameScope struct {
	name   string
	owners map[string]string
}

func newScope(name string) *nameScope {
	return &nameScope{name: name, owners: make(map[string]string)}
}

// claim records source as the owner of prop. Two design properties read from
// the same key are not a collision.
func (s *nameScope) claim(prop, source string) error {
	owner, taken := s.owners[prop]
	if !taken {
		s.owners[prop] = source
		return nil
	}
	if owner == source {
		return nil
	}
	return theme.NewError(theme.ErrCodeDuplicate,
		fmt.Sprintf("%s and %s both render as --%s in %s", owner, source, prop, s.label()), nil,
		map[string]interface{}{
			"property": "--" + prop,
			"scope":    s.label(),
			"tokens":   []string{owner, source},
		})
}

func (s *nameScope) label() string {
	if strings.HasPrefix(s.name, "@") {
		return s.name
	}
	return s.name + " scope"
}
