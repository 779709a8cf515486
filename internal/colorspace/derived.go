package colorspace

import (
	"fmt"
	"strconv"
)

// DerivedColor is the perceptual form of one color token. Hue is 0 for
// achromatic colors.
type DerivedColor struct {
	Lightness float64
	Chroma    float64
	Hue       float64
}

// Neutral is the substitute used when a token cannot be converted.
func Neutral() DerivedColor {
	return DerivedColor{}
}

// IsNeutral reports whether d is the zero color.
func (d DerivedColor) IsNeutral() bool {
	return d == DerivedColor{}
}

// CSS renders d as an oklch() function with four decimal places.
func (d DerivedColor) CSS() string {
	return fmt.Sprintf("oklch(%s %s %s)", fixed4(d.Lightness), fixed4(d.Chroma), fixed4(d.Hue))
}

func (d DerivedColor) String() string {
	return d.CSS()
}

// fixed4 formats with four decimals and folds negative zero.
func fixed4(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	if s == "-0.0000" {
		return "0.0000"
	}
	return s
}
