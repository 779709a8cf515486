package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is a raw name/value pair as it appears in a mode group.
type Entry struct {
	Name  string
	Value string
}

// TableData is the input to NewTable.
type TableData struct {
	Light      []Entry
	Dark       []Entry
	Design     Design
	Gradients  []Literal
	Semantic   []Literal
	Components []Literal
}

// Table is the canonical, read-only source of token values. Mode groups keep
// their document order.
type Table struct {
	tokens     map[Mode][]Token
	index      map[Mode]map[string]int
	design     Design
	gradients  []Literal
	semantic   []Literal
	components []Literal
}

// NewTable builds a Table from raw entries. Every mode entry is a color token.
// Duplicate names are retained so Validate can report them; lookups resolve to
// the first occurrence.
func NewTable(data TableData) *Table {
	t := &Table{
		tokens:     make(map[Mode][]Token, len(Modes)),
		index:      make(map[Mode]map[string]int, len(Modes)),
		design:     data.Design,
		gradients:  cloneLiterals(data.Gradients),
		semantic:   cloneLiterals(data.Semantic),
		components: cloneLiterals(data.Components),
	}

	for _, mode := range Modes {
		entries := data.Light
		if mode == ModeDark {
			entries = data.Dark
		}
		tokens := make([]Token, 0, len(entries))
		idx := make(map[string]int, len(entries))
		for _, entry := range entries {
			if _, seen := idx[entry.Name]; !seen {
				idx[entry.Name] = len(tokens)
			}
			tokens = append(tokens, Token{
				Name:     entry.Name,
				Mode:     mode,
				RawValue: entry.Value,
				Kind:     KindColor,
			})
		}
		t.tokens[mode] = tokens
		t.index[mode] = idx
	}

	return t
}

// Tokens returns a copy of the tokens defined for mode, in document order.
func (t *Table) Tokens(mode Mode) []Token {
	if t == nil {
		return nil
	}
	return append([]Token(nil), t.tokens[mode]...)
}

// Names returns the token names defined for mode, in document order.
func (t *Table) Names(mode Mode) []string {
	tokens := t.Tokens(mode)
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = tok.Name
	}
	return names
}

// Len reports how many tokens mode defines.
func (t *Table) Len(mode Mode) int {
	if t == nil {
		return 0
	}
	return len(t.tokens[mode])
}

// Lookup returns the token called name in mode. A missing token is not an
// error: callers render it unstyled.
func (t *Table) Lookup(mode Mode, name string) (Token, bool) {
	if t == nil {
		return Token{}, false
	}
	i, ok := t.index[mode][name]
	if !ok {
		return Token{}, false
	}
	return t.tokens[mode][i], true
}

// Value returns the raw value of name in mode, or "" when absent.
func (t *Table) Value(mode Mode, name string) string {
	tok, _ := t.Lookup(mode, name)
	return tok.RawValue
}

// Design returns the shared design tokens.
func (t *Table) Design() Design {
	if t == nil {
		return Design{}
	}
	return t.design
}

// Gradients returns the gradient group.
func (t *Table) Gradients() []Literal {
	if t == nil {
		return nil
	}
	return cloneLiterals(t.gradients)
}

// Semantic returns the semantic status colors.
func (t *Table) Semantic() []Literal {
	if t == nil {
		return nil
	}
	return cloneLiterals(t.semantic)
}

// Components returns the flattened component color group.
func (t *Table) Components() []Literal {
	if t == nil {
		return nil
	}
	return cloneLiterals(t.components)
}

// Gradient returns the named gradient or "".
func (t *Table) Gradient(name string) string {
	return findLiteral(t.Gradients(), name)
}

// SemanticColor returns the named semantic color or "".
func (t *Table) SemanticColor(name string) string {
	return findLiteral(t.Semantic(), name)
}

// Resolve looks a value up by dotted path, for example "light.primary",
// "design.radius.base" or "components.kpiCards.blue.bg". Unknown paths
// resolve to ("", false).
func (t *Table) Resolve(path string) (string, bool) {
	if t == nil {
		return "", false
	}
	group, rest, found := strings.Cut(path, ".")
	if !found || rest == "" {
		return "", false
	}

	var pool []Literal
	switch group {
	case string(ModeLight), string(ModeDark):
		tok, ok := t.Lookup(Mode(group), rest)
		return tok.RawValue, ok
	case "design":
		pool = t.design.Literals()
	case "gradients":
		pool = t.gradients
	case "semantic":
		pool = t.semantic
	case "components":
		pool = t.components
	default:
		return "", false
	}

	for _, lit := range pool {
		if lit.Path == rest {
			return lit.Value, true
		}
	}
	return "", false
}

// CheckSymmetry verifies that every token name present in one mode is also
// present in the other.
func (t *Table) CheckSymmetry() error {
	if t == nil {
		return NewError(ErrCodeValidation, "token table is nil", nil, nil)
	}

	missing := map[Mode][]string{}
	for _, mode := range Modes {
		other := mode.Toggle()
		for _, tok := range t.tokens[mode] {
			if _, ok := t.index[other][tok.Name]; !ok {
				missing[other] = appendUnique(missing[other], tok.Name)
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	context := make(map[string]interface{}, len(missing))
	parts := make([]string, 0, len(missing))
	for _, mode := range Modes {
		names := missing[mode]
		if len(names) == 0 {
			continue
		}
		context["missing_"+string(mode)] = names
		parts = append(parts, fmt.Sprintf("%s lacks %s", mode, strings.Join(names, ", ")))
	}
	return NewError(ErrCodeAsymmetric, "light and dark tokens differ: "+strings.Join(parts, "; "), nil, context)
}

// Validate checks structural invariants: names are non-empty, unique within
// each mode and group, and the two modes are symmetric.
func (t *Table) Validate() error {
	if t == nil {
		return NewError(ErrCodeValidation, "token table is nil", nil, nil)
	}

	for _, mode := range Modes {
		if len(t.tokens[mode]) == 0 {
			return NewError(ErrCodeValidation, fmt.Sprintf("%s mode defines no tokens", mode), nil, map[string]interface{}{
				"mode": string(mode),
			})
		}
		seen := make(map[string]struct{}, len(t.tokens[mode]))
		for i, tok := range t.tokens[mode] {
			if strings.TrimSpace(tok.Name) == "" {
				return NewError(ErrCodeValidation, "token name is empty", nil, map[string]interface{}{
					"mode":  string(mode),
					"index": i,
				})
			}
			if _, dup := seen[tok.Name]; dup {
				return NewError(ErrCodeDuplicate, "duplicate token name", nil, map[string]interface{}{
					"mode": string(mode),
					"name": tok.Name,
				})
			}
			seen[tok.Name] = struct{}{}
		}
	}

	groups := []struct {
		name     string
		literals []Literal
	}{
		{"gradients", t.gradients},
		{"semantic", t.semantic},
		{"components", t.components},
	}
	for _, group := range groups {
		seen := make(map[string]struct{}, len(group.literals))
		for _, lit := range group.literals {
			if _, dup := seen[lit.Path]; dup {
				return NewError(ErrCodeDuplicate, "duplicate token name", nil, map[string]interface{}{
					"group": group.name,
					"name":  lit.Path,
				})
			}
			seen[lit.Path] = struct{}{}
		}
	}

	return t.CheckSymmetry()
}

// ColorNames returns the union of light and dark token names, light order
// first, then dark-only names sorted.
func (t *Table) ColorNames() []string {
	names := t.Names(ModeLight)
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	var extra []string
	for _, n := range t.Names(ModeDark) {
		if _, ok := seen[n]; !ok {
			extra = appendUnique(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func findLiteral(literals []Literal, path string) string {
	for _, lit := range literals {
		if lit.Path == path {
			return lit.Value
		}
	}
	return ""
}

func cloneLiterals(src []Literal) []Literal {
	if src == nil {
		return nil
	}
	return append([]Literal(nil), src...)
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
