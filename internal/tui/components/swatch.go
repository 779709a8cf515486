package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fundraise-pro/themegen/internal/colorspace"
)

const (
	swatchWidth = 6
	nameWidth   = 34
)

var (
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Swatch is one custom property resolved for the active mode.
type Swatch struct {
	Property string
	Value    string
}

// SwatchList renders swatches in a fixed order.
type SwatchList struct {
	entries   []Swatch
	lightness Lightness
}

// NewSwatchList constructs a swatch list component.
func NewSwatchList(entries []Swatch, barWidth int) SwatchList {
	clone := make([]Swatch, len(entries))
	copy(clone, entries)
	return SwatchList{entries: clone, lightness: NewLightness(barWidth)}
}

// Entries returns the ordered swatches.
func (s SwatchList) Entries() []Swatch {
	clone := make([]Swatch, len(s.entries))
	copy(clone, s.entries)
	return clone
}

// View renders one line per swatch.
func (s SwatchList) View() string {
	lines := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		lines = append(lines, s.render(entry))
	}
	return strings.Join(lines, "\n")
}

func (s SwatchList) render(entry Swatch) string {
	name := fmt.Sprintf("%-*s", nameWidth, "--"+strings.TrimPrefix(entry.Property, "--"))
	if entry.Value == "" {
		return fmt.Sprintf(" %s %s %s", strings.Repeat(" ", swatchWidth), name, emptyStyle.Render("(unset)"))
	}

	derived, err := colorspace.ParseCSS(entry.Value)
	if err != nil {
		return fmt.Sprintf(" %s %s %s", strings.Repeat(" ", swatchWidth), name, valueStyle.Render(entry.Value))
	}

	block := lipgloss.NewStyle().
		Background(lipgloss.Color(derived.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
	return fmt.Sprintf(" %s %s %s  %s", block, name, valueStyle.Render(entry.Value), s.lightness.View(derived.Lightness))
}
