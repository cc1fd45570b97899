package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var rules = []string{
	"Pieces fall one row at a time. Fill a row completely to clear it.",
	"Clearing more rows with one piece scores more:",
	"  1 row 1000, 2 rows 6000, 3 rows 16000, 4 rows 32000.",
	"The game ends when a piece settles in the rows marked with !.",
}

// HelpModel shows the controls and the scoring rules.
type HelpModel struct {
	width    int
	height   int
	keys     MenuKeyMap
	gameKeys GameKeyMap
	help     help.Model
	back     bool
	quitting bool
}

// NewHelpModel creates a new help screen model.
func NewHelpModel(width, height int) HelpModel {
	h := help.New()
	h.ShowAll = true

	return HelpModel{
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		gameKeys: DefaultGameKeyMap(),
		help:     h,
	}
}

// Init initializes the model.
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
			m.back = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the help screen.
func (m HelpModel) View() string {
	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.MenuTitle.Render(centerText("HELP", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.help.View(m.gameKeys), m.width))
	b.WriteString("\n\n")

	for _, line := range rules {
		b.WriteString(theme.MenuDescription.Render(centerText(padRight(line, 66), m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(centerText("esc/enter: back  |  q: quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// WantsBack returns true if user wants to go back to the title screen.
func (m HelpModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m HelpModel) IsQuitting() bool {
	return m.quitting
}
