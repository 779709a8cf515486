package colorspace

import "math"

const (
	linearThreshold = 0.04045
	chromaScale     = 0.2
)

// Approximate converts a hex color with the lightweight luminance/chroma
// approximation: lightness is the square root of BT.709 relative luminance,
// chroma is 0.2 times the spread of the linearized channels and hue uses the
// six-region formula. It is not a colorimetric OKLCH transform.
func Approximate(hex string) (DerivedColor, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return DerivedColor{}, err
	}

	r, g, b := rgb.Normalized()
	r, g, b = linearize(r), linearize(g), linearize(b)

	luminance := 0.2126*r + 0.7152*g + 0.0722*b

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	spread := maxC - minC

	return DerivedColor{
		Lightness: math.Sqrt(luminance),
		Chroma:    spread * chromaScale,
		Hue:       sixRegionHue(r, g, b, maxC, spread),
	}, nil
}

func linearize(c float64) float64 {
	if c <= linearThreshold {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func sixRegionHue(r, g, b, maxC, spread float64) float64 {
	if spread == 0 {
		return 0
	}

	var h float64
	switch maxC {
	case r:
		h = math.Mod((g-b)/spread, 6)
	case g:
		h = (b-r)/spread + 2
	default:
		h = (r-g)/spread + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}
