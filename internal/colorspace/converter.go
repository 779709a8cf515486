package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MethodOKLCH       = "oklch"
	MethodApproximate = "approximate"
)

// Methods lists the supported conversion methods.
var Methods = []string{MethodOKLCH, MethodApproximate}

// Converter turns a hex string into a DerivedColor.
type Converter interface {
	Convert(hex string) (DerivedColor, error)
	Name() string
}

// Func adapts a conversion function to the Converter interface.
type Func struct {
	name string
	fn   func(string) (DerivedColor, error)
}

// Convert implements Converter.
func (f Func) Convert(hex string) (DerivedColor, error) {
	return f.fn(hex)
}

// Name implements Converter.
func (f Func) Name() string {
	return f.name
}

// ForMethod returns the converter registered under method. An empty method
// selects OKLCH.
func ForMethod(method string) (Converter, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", MethodOKLCH:
		return Func{name: MethodOKLCH, fn: OKLCH}, nil
	case MethodApproximate:
		return Func{name: MethodApproximate, fn: Approximate}, nil
	default:
		return nil, fmt.Errorf("unknown conversion method %q (want one of %s)", method, strings.Join(Methods, ", "))
	}
}

// ConvertOrNeutral converts hex and substitutes Neutral on failure. The error
// is still returned so the caller can report the substitution; it never
// stops a generation run.
func ConvertOrNeutral(conv Converter, hex string) (DerivedColor, error) {
	derived, err := conv.Convert(hex)
	if err != nil {
		return Neutral(), err
	}
	return derived, nil
}

func trimInt(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
