// Package tui renders the generated theme as terminal swatches and lets the
// user flip the runtime theme switch.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fundraise-pro/themegen/internal/colorspace"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/stylesheet"
	"github.com/fundraise-pro/themegen/internal/themeswitch"
)

// ModeMsg reports that the theme switch changed mode, possibly from outside
// the model.
type ModeMsg struct {
	Mode theme.Mode
}

// Options configures a preview model.
type Options struct {
	Title          string
	Source         string
	Properties     []string
	Substitutions  []string
	NonInteractive bool
}

// Model contains the Bubbletea state for the theme preview.
type Model struct {
	ctx            context.Context
	sw             *themeswitch.Switch
	resolver       *themeswitch.Resolver
	title          string
	source         string
	properties     []string
	substitutions  []string
	keys           keyMap
	help           help.Model
	width          int
	toggles        int
	quitting       bool
	nonInteractive bool
}

// NewModel constructs a preview model. Every swatch is read through resolver
// on each render, so toggling sw changes what is shown.
func NewModel(ctx context.Context, sw *themeswitch.Switch, resolver *themeswitch.Resolver, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	props := make([]string, len(opts.Properties))
	copy(props, opts.Properties)

	return Model{
		ctx:            ctx,
		sw:             sw,
		resolver:       resolver,
		title:          opts.Title,
		source:         opts.Source,
		properties:     props,
		substitutions:  opts.Substitutions,
		keys:           defaultKeyMap(),
		help:           help.New(),
		width:          80,
		nonInteractive: opts.NonInteractive,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the mode currently shown.
func (m Model) Mode() theme.Mode {
	return m.resolver.Mode()
}

// Toggles returns how many times the user flipped the switch.
func (m Model) Toggles() int {
	return m.toggles
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Properties lists the custom properties worth a swatch: every root
// declaration holding a color, plus gradients, in stylesheet order.
func Properties(doc stylesheet.Document) []string {
	var props []string
	for _, decl := range doc.Root.Declarations {
		if strings.HasPrefix(decl.Name, "gradient-") {
			props = append(props, decl.Name)
			continue
		}
		if _, err := colorspace.ParseCSS(decl.Value); err == nil {
			props = append(props, decl.Name)
		}
	}
	return props
}
