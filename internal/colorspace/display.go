package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseCSS reads a color value as it appears in a generated stylesheet:
// an oklch() function or a #RRGGBB literal.
func ParseCSS(value string) (DerivedColor, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		return OKLCH(value)
	}

	inner, ok := strings.CutPrefix(value, "oklch(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return DerivedColor{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}
	fields := strings.Fields(strings.TrimSuffix(inner, ")"))
	if len(fields) != 3 {
		return DerivedColor{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}

	var parts [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return DerivedColor{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
		}
		parts[i] = v
	}
	return DerivedColor{Lightness: parts[0], Chroma: parts[1], Hue: parts[2]}, nil
}

// Hex maps d back into sRGB, clamping out-of-gamut colors.
func (d DerivedColor) Hex() string {
	return strings.ToUpper(colorful.OkLch(d.Lightness, d.Chroma, d.Hue).Clamped().Hex())
}
