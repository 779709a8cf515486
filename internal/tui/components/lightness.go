package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Lightness renders a perceptual lightness value as a bar.
type Lightness struct {
	bar progress.Model
}

// NewLightness creates a lightness bar of the given width.
func NewLightness(width int) Lightness {
	bar := progress.New(progress.WithSolidFill("250"), progress.WithoutPercentage())
	if width > 0 {
		bar.Width = width
	}
	return Lightness{bar: bar}
}

// View renders l, clamped to [0,1], with a two-decimal label.
func (l Lightness) View(value float64) string {
	ratio := math.Max(0, math.Min(1, value))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("L %.2f", ratio))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", l.bar.ViewAs(ratio))
}
