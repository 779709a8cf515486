package theme

// Kind classifies how a token value is rendered.
type Kind string

const (
	KindColor   Kind = "color"
	KindLength  Kind = "length"
	KindFont    Kind = "font"
	KindOpacity Kind = "opacity"
	KindLiteral Kind = "literal"
)

// Token is one named design value. Tokens are defined once at load time and
// never mutated.
type Token struct {
	Name     string
	Mode     Mode
	RawValue string
	Kind     Kind
}

// Literal is a pass-through value addressed by a dotted path relative to its
// group, for example "kpiCards.blue.bg" inside components.
type Literal struct {
	Path  string
	Value string
	Kind  Kind
}
