package stylesheet

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// SyntaxError describes the first structural problem found in a stylesheet.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Scope is one selector-qualified block and the custom properties it declares.
type Scope struct {
	Selector     string
	Declarations []Declaration
}

// Check verifies that css is structurally sound: every opened scope closes,
// every declaration ends with a semicolon, there is at most one declaration
// per line and no custom property is declared twice in the same scope.
func Check(css string) error {
	_, err := walk(css)
	return err
}

// Scopes extracts the custom properties of every scope keyed by selector.
// Scopes sharing a selector are merged, later declarations winning.
func Scopes(css string) (map[string]map[string]string, error) {
	scopes, err := walk(css)
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]string, len(scopes))
	for _, sc := range scopes {
		props, ok := out[sc.Selector]
		if !ok {
			props = make(map[string]string, len(sc.Declarations))
			out[sc.Selector] = props
		}
		for _, d := range sc.Declarations {
			props[d.Name] = d.Value
		}
	}
	return out, nil
}

type openScope struct {
	selector string
	line     int
	seen     map[string]int
	decls    []Declaration
}

// walk tokenizes css and tracks statements between '{', '}' and ';'.
func walk(css string) ([]Scope, error) {
	s := scanner.New(css)

	var (
		stack       []*openScope
		closed      []Scope
		stmt        strings.Builder
		stmtLine    int
		lastEndLine = -1
	)

	resetStmt := func() {
		stmt.Reset()
		stmtLine = 0
	}

	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if text := normalize(stmt.String()); text != "" {
				return nil, &SyntaxError{Line: stmtLine, Message: fmt.Sprintf("statement %q is not terminated", text)}
			}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				return nil, &SyntaxError{Line: top.line, Message: fmt.Sprintf("scope %q is never closed", top.selector)}
			}
			return closed, nil
		case scanner.TokenError:
			return nil, &SyntaxError{Line: tok.Line, Message: fmt.Sprintf("unexpected input %q", tok.Value)}
		case scanner.TokenComment:
			continue
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				selector := normalize(stmt.String())
				if selector == "" {
					return nil, &SyntaxError{Line: tok.Line, Message: "scope opened without a selector"}
				}
				stack = append(stack, &openScope{selector: selector, line: tok.Line, seen: map[string]int{}})
				resetStmt()
				continue
			case "}":
				if text := normalize(stmt.String()); text != "" {
					return nil, &SyntaxError{Line: stmtLine, Message: fmt.Sprintf("declaration %q is missing a semicolon", text)}
				}
				if len(stack) == 0 {
					return nil, &SyntaxError{Line: tok.Line, Message: "unbalanced closing brace"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				closed = append(closed, Scope{Selector: top.selector, Declarations: top.decls})
				resetStmt()
				continue
			case ";":
				text := normalize(stmt.String())
				if text == "" {
					return nil, &SyntaxError{Line: tok.Line, Message: "empty declaration"}
				}
				if tok.Line == lastEndLine {
					return nil, &SyntaxError{Line: tok.Line, Message: "more than one declaration on a line"}
				}
				lastEndLine = tok.Line
				if err := record(stack, text, tok.Line); err != nil {
					return nil, err
				}
				resetStmt()
				continue
			}
		}

		if stmtLine == 0 && tok.Type != scanner.TokenS {
			stmtLine = tok.Line
		}
		stmt.WriteString(tok.Value)
	}
}

// record registers a custom property declaration in the innermost scope.
func record(stack []*openScope, text string, line int) error {
	name, value, ok := strings.Cut(text, ":")
	name = strings.TrimSpace(name)
	if !ok || !strings.HasPrefix(name, "--") {
		return nil
	}
	if len(stack) == 0 {
		return &SyntaxError{Line: line, Message: fmt.Sprintf("custom property %s declared outside any scope", name)}
	}
	top := stack[len(stack)-1]
	if first, dup := top.seen[name]; dup {
		return &SyntaxError{Line: line, Message: fmt.Sprintf("%s declared twice in %q (first on line %d)", name, top.selector, first)}
	}
	top.seen[name] = line
	top.decls = append(top.decls, Declaration{Name: strings.TrimPrefix(name, "--"), Value: strings.TrimSpace(value)})
	return nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
