package colorspace

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// achromaticChroma is the chroma below which a color is reported as gray
// (chroma and hue 0). Pure grays come out of the OkLab transform with a
// residual chroma around 1e-4.
const achromaticChroma = 5e-4

// OKLCH converts a hex color to OKLCH using go-colorful's OkLab transform.
func OKLCH(hex string) (DerivedColor, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return DerivedColor{}, err
	}

	r, g, b := rgb.Normalized()
	l, c, h := colorful.Color{R: r, G: g, B: b}.OkLch()

	if c < achromaticChroma {
		c, h = 0, 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	return DerivedColor{
		Lightness: clamp01(l),
		Chroma:    c,
		Hue:       h,
	}, nil
}

// HSL renders a hex color as a CSS hsl() function with whole-number
// components, the form used for shadow colors.
func HSL(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	r, g, b := rgb.Normalized()
	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()
	if math.IsNaN(h) || s == 0 {
		h = 0
	}
	return formatHSL(h, s, l), nil
}

func formatHSL(h, s, l float64) string {
	return "hsl(" + trimInt(h) + " " + trimInt(s*100) + "% " + trimInt(l*100) + "%)"
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// NeutralHSL is the shadow color substituted for a malformed hex value.
const NeutralHSL = "hsl(0 0% 0%)"

// WithAlpha adds an alpha component to an hsl() value produced by HSL:
// "hsl(0 0% 0%)" becomes "hsl(0 0% 0% / 0.1)".
func WithAlpha(hsl, alpha string) string {
	return strings.TrimSuffix(hsl, ")") + " / " + alpha + ")"
}
