package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/tui/components"
)

const barWidth = 16

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mode := m.resolver.Mode()
	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("themegen • %s", m.heading()))+" "+ModeBadge(mode))

	swatches, unset := m.swatches()
	if len(swatches) > 0 {
		sections = append(sections, sectionStyle.Render("Colors"))
		sections = append(sections, components.NewSwatchList(swatches, barWidth).View())
	}

	summary := components.NewSummary(components.SummaryData{
		Source:        m.source,
		Mode:          string(mode),
		Colors:        len(swatches),
		Unset:         unset,
		Substitutions: m.substitutions,
	}).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	if !m.nonInteractive {
		sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Render returns the static form of the preview, used when stdout is not a
// terminal.
func Render(m Model) string {
	m.nonInteractive = true
	return m.View() + "\n"
}

func (m Model) swatches() ([]components.Swatch, int) {
	entries := make([]components.Swatch, 0, len(m.properties))
	unset := 0
	for _, prop := range m.properties {
		value := m.resolver.Var(prop)
		if value == "" {
			unset++
		}
		entries = append(entries, components.Swatch{Property: prop, Value: value})
	}
	return entries, unset
}

func (m Model) heading() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Theme preview"
}

// ModeBadge returns the label shown next to the title for mode.
func ModeBadge(mode theme.Mode) string {
	switch mode {
	case theme.ModeDark:
		return darkStyle.Render("● dark")
	default:
		return lightStyle.Render("○ light")
	}
}
