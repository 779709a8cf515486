package theme

import (
	"fmt"
	"strings"
)

// Mode is one of the two supported visual themes.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Modes lists every mode in emission order.
var Modes = []Mode{ModeLight, ModeDark}

// ParseMode converts user input into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", NewError(ErrCodeValidation, fmt.Sprintf("unknown mode %q", value), nil, map[string]interface{}{
			"mode": value,
		})
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

func (m Mode) String() string {
	return string(m)
}
