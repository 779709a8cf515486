// Package colorspace converts 8-bit sRGB hex colors into the lightness,
// chroma and hue triples emitted as CSS oklch() values.
package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat reports input that is not exactly six hex digits
// after one optional leading '#'.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB holds the three byte channels of a color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ParseHex parses "#RRGGBB" or "RRGGBB". Short forms, named colors, a doubled
// '#' and non-hex digits are rejected.
func ParseHex(value string) (RGB, error) {
	digits := strings.TrimPrefix(value, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}

	var channels [3]uint8
	for i := range channels {
		n, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
		}
		channels[i] = uint8(n)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex renders the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Normalized returns each channel scaled into [0,1].
func (c RGB) Normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
