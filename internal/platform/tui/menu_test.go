package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func updateMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name     string
		downs    int
		expected MenuChoice
	}{
		{"play", 0, ChoicePlay},
		{"settings", 1, ChoiceSettings},
		{"help", 2, ChoiceHelp},
		{"quit", 3, ChoiceQuit},
		{"cursor stops at last entry", 9, ChoiceQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(80, 24, "")
			for i := 0; i < tc.downs; i++ {
				m = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown})
			}
			m = updateMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
			assert.Equal(t, tc.expected, m.Selected())
			assert.Equal(t, tc.expected == ChoiceQuit, m.IsQuitting())
		})
	}
}

func TestMenuCursorStopsAtTop(t *testing.T) {
	m := updateMenu(NewMenuModel(80, 24, ""),
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, ChoicePlay, m.Selected())
}

func TestMenuView(t *testing.T) {
	view := NewMenuModel(80, 24, "alice").View()

	assert.Contains(t, view, "> Play")
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "profile: alice")
}

func TestHelpModel(t *testing.T) {
	m := NewHelpModel(100, 30)
	view := m.View()
	assert.Contains(t, view, "hard drop")
	assert.Contains(t, view, "32000")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(HelpModel).WantsBack())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(HelpModel).IsQuitting())
}
