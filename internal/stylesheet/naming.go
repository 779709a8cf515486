package stylesheet

import (
	"strings"
	"unicode"
)

// Kebab converts a token identifier into a custom property name. A hyphen is
// inserted before every run of uppercase letters and before a run of digits
// that follows a letter, then the result is lowercased:
//
//	cardForeground -> card-foreground
//	chart1         -> chart-1
//	offsetX        -> offset-x
//
// Names with consecutive capitals do not round-trip.
func Kebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	var prev rune
	for i, r := range name {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && !unicode.IsUpper(prev) && prev != '-' {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			if i > 0 && unicode.IsLetter(prev) {
				b.WriteByte('-')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// PathName converts a dotted token path into a property name, optionally
// prefixed: ("gradient", "primary") -> "gradient-primary",
// ("", "kpiCards.blue.bg") -> "kpi-cards-blue-bg".
func PathName(prefix, path string) string {
	segments := strings.Split(path, ".")
	parts := make([]string, 0, len(segments)+1)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		parts = append(parts, Kebab(seg))
	}
	return strings.Join(parts, "-")
}
