package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var clearLabels = [...]string{"No rows", "1 row", "2 rows", "3 rows", "4 rows"}

// ResultsModel shows the final score and a table of clears per lock size.
type ResultsModel struct {
	result   tetris.Result
	table    table.Model
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	back     bool
	quitting bool
}

// NewResultsModel creates a results screen for a finished session.
func NewResultsModel(result tetris.Result, width, height int) ResultsModel {
	m := ResultsModel{
		result: result,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the clears table.
func (m ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Cleared", Width: 10},
		{Title: "Locks", Width: 8},
		{Title: "Points", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(ResultRows(m.result.Stats)),
		table.WithFocused(true),
		table.WithHeight(len(clearLabels)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// ResultRows returns one table row per clear size: the number of locks that
// cleared that many rows and the points they earned.
func ResultRows(stats tetris.Stats) []table.Row {
	rows := make([]table.Row, len(clearLabels))
	for n, label := range clearLabels {
		count := stats.Clears[n]
		rows[n] = table.Row{
			label,
			strconv.Itoa(count),
			strconv.Itoa(count * tetris.Points(n)),
		}
	}
	return rows
}

// Init initializes the model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
			m.back = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results.
func (m ResultsModel) View() string {
	theme := GetTheme()
	var b strings.Builder

	title := "GAME OVER"
	if m.result.Abandoned {
		title = "GAME ABANDONED"
	}

	b.WriteString("\n")
	b.WriteString(theme.ResultHeading.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Score: %d   Pieces: %d   Lines: %d",
		m.result.Score, m.result.Stats.Pieces, m.result.Stats.Lines)
	b.WriteString(theme.ResultValue.Render(centerText(summary, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	for _, line := range strings.Split(tableStyle.Render(m.table.View()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(centerText(m.help.View(m.keys), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Result returns the session result being shown.
func (m ResultsModel) Result() tetris.Result {
	return m.result
}

// WantsBack returns true if user wants to go back to the title screen.
func (m ResultsModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
