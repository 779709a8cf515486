package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

func TestUpdateToggleKeyFlipsSwitch(t *testing.T) {
	m, sw := newTestModel(t, theme.ModeLight)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, theme.ModeDark, sw.Current())
	require.Equal(t, theme.ModeDark, m.Mode())
	require.Equal(t, 1, m.Toggles())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = updated.(Model)
	require.Equal(t, theme.ModeLight, m.Mode())
	require.Equal(t, 2, m.Toggles())
}

func TestUpdateQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, theme.ModeLight)
			updated, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)
			m = updated.(Model)
			require.True(t, m.Quitting())
			require.Empty(t, m.View())
		})
	}
}

func TestUpdateHelpAndWindowSize(t *testing.T) {
	m, _ := newTestModel(t, theme.ModeLight)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	require.Equal(t, 120, m.width)
	require.Equal(t, 120, m.help.Width)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	require.True(t, m.help.ShowAll)
}

func TestUpdateModeMsgFromOutside(t *testing.T) {
	m, sw := newTestModel(t, theme.ModeLight)
	sw.Toggle(m.ctx)

	updated, cmd := m.Update(ModeMsg{Mode: theme.ModeDark})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, theme.ModeDark, m.Mode())
	require.Zero(t, m.Toggles())
	require.Contains(t, m.View(), darkPrimary)
}
