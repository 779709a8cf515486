package config

import (
	"fmt"
	"strings"

	apperrors "github.com/fundraise-pro/themegen/pkg/errors"
)

// ValidateDocument performs structural and cross-field validation on a token document.
// Light/dark symmetry is a domain rule and is checked by theme.Table.Validate.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return apperrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if doc.Selectors.Root != "" && doc.Selectors.Root == doc.Selectors.Dark {
		return apperrors.NewValidationError("selectors.dark", fmt.Sprintf("dark selector %q must differ from the root selector", doc.Selectors.Dark), nil)
	}

	groups := []struct {
		name     string
		pairs    []Pair
		optional bool
	}{
		{"light", doc.Light, true},
		{"dark", doc.Dark, true},
		{"gradients", doc.Gradients, false},
		{"semantic", doc.Semantic, false},
		{"components", doc.Components, false},
	}
	for _, group := range groups {
		if err := checkDuplicates(group.name, group.pairs); err != nil {
			return err
		}
		if group.optional {
			continue
		}
		if err := checkValues(group.name, group.pairs); err != nil {
			return err
		}
	}

	return nil
}

// checkValues rejects empty values in the pass-through groups. Color tokens
// are exempt: the emitter substitutes the neutral color for them.
func checkValues(group string, pairs []Pair) error {
	for _, p := range pairs {
		if strings.TrimSpace(p.Value) == "" {
			return apperrors.NewValidationError(fieldForToken(group, p.Key), fmt.Sprintf("token %q on line %d has no value", p.Key, p.Line), nil)
		}
	}
	return nil
}

func checkDuplicates(group string, pairs []Pair) error {
	seen := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if first, exists := seen[p.Key]; exists {
			return apperrors.NewValidationError(fieldForToken(group, p.Key), fmt.Sprintf("duplicate token %q (line %d, first defined on line %d)", p.Key, p.Line, first), nil)
		}
		seen[p.Key] = p.Line
	}
	return nil
}
