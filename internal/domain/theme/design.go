package theme

import "strconv"

// Design holds the non-color design tokens shared by both modes.
type Design struct {
	Radius        Radius
	Shadow        Shadow
	Fonts         Fonts
	LetterSpacing LetterSpacing
	Spacing       Spacing
}

// Radius is the border radius scale.
type Radius struct {
	Base string
	SM   string
	MD   string
	LG   string
	XL   string
	Full string
}

// Shadow describes the single shadow recipe the shadow scale is derived from.
type Shadow struct {
	Color   string
	Opacity float64
	Blur    string
	Spread  string
	OffsetX string
	OffsetY string
}

// Fonts lists the font stacks.
type Fonts struct {
	Sans  string
	Serif string
	Mono  string
}

// LetterSpacing is the tracking scale.
type LetterSpacing struct {
	Normal  string
	Tight   string
	Tighter string
	Wide    string
	Wider   string
	Widest  string
}

// Spacing holds the base spacing unit.
type Spacing struct {
	Base string
}

// FormatOpacity renders an opacity without trailing zeros.
func FormatOpacity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Literals flattens the design group into addressable values in a stable order.
func (d Design) Literals() []Literal {
	return []Literal{
		{Path: "radius.base", Value: d.Radius.Base, Kind: KindLength},
		{Path: "radius.sm", Value: d.Radius.SM, Kind: KindLength},
		{Path: "radius.md", Value: d.Radius.MD, Kind: KindLength},
		{Path: "radius.lg", Value: d.Radius.LG, Kind: KindLength},
		{Path: "radius.xl", Value: d.Radius.XL, Kind: KindLength},
		{Path: "radius.full", Value: d.Radius.Full, Kind: KindLength},
		{Path: "shadow.color", Value: d.Shadow.Color, Kind: KindColor},
		{Path: "shadow.opacity", Value: FormatOpacity(d.Shadow.Opacity), Kind: KindOpacity},
		{Path: "shadow.blur", Value: d.Shadow.Blur, Kind: KindLength},
		{Path: "shadow.spread", Value: d.Shadow.Spread, Kind: KindLength},
		{Path: "shadow.offsetX", Value: d.Shadow.OffsetX, Kind: KindLength},
		{Path: "shadow.offsetY", Value: d.Shadow.OffsetY, Kind: KindLength},
		{Path: "fonts.sans", Value: d.Fonts.Sans, Kind: KindFont},
		{Path: "fonts.serif", Value: d.Fonts.Serif, Kind: KindFont},
		{Path: "fonts.mono", Value: d.Fonts.Mono, Kind: KindFont},
		{Path: "letterSpacing.normal", Value: d.LetterSpacing.Normal, Kind: KindLength},
		{Path: "letterSpacing.tight", Value: d.LetterSpacing.Tight, Kind: KindLength},
		{Path: "letterSpacing.tighter", Value: d.LetterSpacing.Tighter, Kind: KindLength},
		{Path: "letterSpacing.wide", Value: d.LetterSpacing.Wide, Kind: KindLength},
		{Path: "letterSpacing.wider", Value: d.LetterSpacing.Wider, Kind: KindLength},
		{Path: "letterSpacing.widest", Value: d.LetterSpacing.Widest, Kind: KindLength},
		{Path: "spacing.base", Value: d.Spacing.Base, Kind: KindLength},
	}
}
