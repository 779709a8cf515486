package stylesheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fundraise-pro/themegen/internal/colorspace"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

// Input is everything a generation run needs.
type Input struct {
	Theme        *theme.Theme
	Converter    colorspace.Converter
	OnSubstitute func(Substitution)
}

// Document is the assembled stylesheet before serialization.
type Document struct {
	Name         string
	Source       string
	Method       string
	Imports      []string
	DarkSelector string
	Root         Block
	Aliases      Block
	Dark         Block
}

// Result is the output of Generate.
type Result struct {
	CSS           string
	Document      Document
	Substitutions []Substitution
}

// Build converts and emits both mode blocks plus the aliasing block.
func Build(in Input) (Document, []Substitution, error) {
	if in.Theme == nil || in.Theme.Table == nil {
		return Document{}, nil, theme.NewError(theme.ErrCodeValidation, "no token table to render", nil, nil)
	}
	if err := in.Theme.Table.Validate(); err != nil {
		return Document{}, nil, err
	}
	if err := CheckNames(in.Theme.Table); err != nil {
		return Document{}, nil, err
	}
	if in.Converter == nil {
		return Document{}, nil, theme.NewError(theme.ErrCodeInternal, "no color converter configured", nil, nil)
	}
	settings := in.Theme.Settings
	if strings.TrimSpace(settings.RootSelector) == "" || strings.TrimSpace(settings.DarkSelector) == "" {
		return Document{}, nil, theme.NewError(theme.ErrCodeValidation, "root and dark selectors are required", nil, nil)
	}
	if settings.RootSelector == settings.DarkSelector {
		return Document{}, nil, theme.NewError(theme.ErrCodeValidation, "root and dark selectors must differ", nil, map[string]interface{}{
			"selector": settings.RootSelector,
		})
	}

	var subs []Substitution
	emitter := NewEmitter(in.Converter, func(s Substitution) {
		subs = append(subs, s)
		if in.OnSubstitute != nil {
			in.OnSubstitute(s)
		}
	})

	table := in.Theme.Table
	design := emitter.Design(table.Design())

	root := Block{Selector: settings.RootSelector}
	root.Append(emitter.Colors(table, theme.ModeLight)...)
	root.Append(design...)
	root.Append(PassThrough(table)...)

	dark := Block{Selector: settings.DarkSelector}
	dark.Append(emitter.Colors(table, theme.ModeDark)...)
	dark.Append(design...)

	doc := Document{
		Name:         settings.Name,
		Source:       in.Theme.Source,
		Method:       in.Converter.Name(),
		Imports:      append([]string(nil), settings.Imports...),
		DarkSelector: settings.DarkSelector,
		Root:         root,
		Aliases:      Aliases(table),
		Dark:         dark,
	}
	return doc, subs, nil
}

// Assemble serializes a Document. The output is a pure function of the
// document: no timestamps, stable ordering.
func Assemble(doc Document) string {
	var sb strings.Builder

	sb.WriteString(header(doc))
	sb.WriteByte('\n')

	if len(doc.Imports) > 0 {
		tailwind := false
		for _, imp := range doc.Imports {
			fmt.Fprintf(&sb, "@import %q;\n", imp)
			if imp == "tailwindcss" {
				tailwind = true
			}
		}
		sb.WriteByte('\n')
		if tailwind {
			fmt.Fprintf(&sb, "@custom-variant dark (&:is(%s *));\n\n", doc.DarkSelector)
		}
	}

	sections := []string{
		doc.Root.Render(),
		doc.Aliases.Render(),
		baseLayer,
		componentsLayer,
		doc.Dark.Render(),
		outlineLayer,
	}
	sb.WriteString(strings.Join(sections, "\n"))
	return sb.String()
}

// Generate builds, assembles and checks a stylesheet.
func Generate(in Input) (Result, error) {
	doc, subs, err := Build(in)
	if err != nil {
		return Result{}, err
	}

	css := Assemble(doc)
	if err := Check(css); err != nil {
		var syntaxErr *SyntaxError
		ctx := map[string]interface{}{}
		if errors.As(err, &syntaxErr) {
			ctx["line"] = syntaxErr.Line
		}
		return Result{}, theme.NewError(theme.ErrCodeInvalidOutput, "generated stylesheet is not valid", err, ctx)
	}

	return Result{CSS: css, Document: doc, Substitutions: subs}, nil
}

func header(doc Document) string {
	var sb strings.Builder
	sb.WriteString("/*\n")
	if doc.Name != "" {
		fmt.Fprintf(&sb, " * Theme: %s\n", sanitizeComment(doc.Name))
	}
	if doc.Source != "" {
		fmt.Fprintf(&sb, " * Generated by themegen from %s (%s). Do not edit by hand.\n", sanitizeComment(filepath.Base(doc.Source)), doc.Method)
	} else {
		fmt.Fprintf(&sb, " * Generated by themegen (%s). Do not edit by hand.\n", doc.Method)
	}
	sb.WriteString(" * Regenerate with: themegen generate\n")
	sb.WriteString(" */\n")
	return sb.String()
}

func sanitizeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
