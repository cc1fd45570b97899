package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestResultRows(t *testing.T) {
	stats := tetris.Stats{Pieces: 30, Lines: 9, Clears: [5]int{22, 3, 1, 0, 1}}

	rows := ResultRows(stats)

	assert.Equal(t, []table.Row{
		{"No rows", "22", "0"},
		{"1 row", "3", "3000"},
		{"2 rows", "1", "6000"},
		{"3 rows", "0", "0"},
		{"4 rows", "1", "32000"},
	}, rows)
}

func TestResultsView(t *testing.T) {
	result := tetris.Result{
		SessionID: "abc",
		Score:     7000,
		Stats:     tetris.Stats{Pieces: 12, Lines: 3, Clears: [5]int{10, 1, 1}},
	}

	view := NewResultsModel(result, 80, 24).View()
	assert.Contains(t, view, "GAME OVER")
	assert.Contains(t, view, "Score: 7000")
	assert.Contains(t, view, "Pieces: 12")

	result.Abandoned = true
	assert.Contains(t, NewResultsModel(result, 80, 24).View(), "GAME ABANDONED")
}

func TestResultsKeys(t *testing.T) {
	m := NewResultsModel(tetris.Result{}, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, next.(ResultsModel).WantsBack())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, next.(ResultsModel).IsQuitting())
	assert.False(t, next.(ResultsModel).WantsBack())
}
