package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"a", runeKey('a'), core.ActionRotateLeft},
		{"D", runeKey('D'), core.ActionRotateRight},
		{"p", runeKey('p'), core.ActionPause},
		{"x", runeKey('x'), core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, keys.Action(tc.msg))
		})
	}
}

func TestKeyMapsProvideHelp(t *testing.T) {
	assert.NotEmpty(t, DefaultGameKeyMap().ShortHelp())
	assert.NotEmpty(t, DefaultGameKeyMap().FullHelp())
	assert.NotEmpty(t, DefaultMenuKeyMap().ShortHelp())
	assert.NotEmpty(t, DefaultSettingsKeyMap().FullHelp())
}
