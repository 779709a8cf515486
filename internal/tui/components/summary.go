package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates what the preview footer reports.
type SummaryData struct {
	Source        string
	Mode          string
	Colors        int
	Unset         int
	Substitutions []string
}

// Summary renders a textual preview summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Source != "" {
		lines = append(lines, fmt.Sprintf("Source: %s", s.data.Source))
	}
	if s.data.Mode != "" {
		lines = append(lines, fmt.Sprintf("Mode: %s", s.data.Mode))
	}
	if s.data.Colors > 0 {
		lines = append(lines, fmt.Sprintf("Colors: %d", s.data.Colors))
	}
	if s.data.Unset > 0 {
		lines = append(lines, fmt.Sprintf("Unset in this mode: %d", s.data.Unset))
	}

	if len(s.data.Substitutions) > 0 {
		lines = append(lines, "Substituted with neutral:")
		for _, sub := range s.data.Substitutions {
			lines = append(lines, fmt.Sprintf("  ✗ %s", sub))
		}
	}

	return strings.Join(lines, "\n")
}
