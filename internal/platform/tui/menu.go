package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceSettings
	ChoiceHelp
	ChoiceQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceSettings:
		return "Settings"
	case ChoiceHelp:
		return "Help"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoicePlay, ChoiceSettings, ChoiceHelp, ChoiceQuit}

const logo = ` _____  _____  _____  ____   ___  ____
|_   _|| ____||_   _||  _ \ |_ _|/ ___|
  | |  |  _|    | |  | |_) | | | \___ \
  | |  | |___   | |  |  _ <  | |  ___) |
  |_|  |_____|  |_|  |_| \_\|___||____/`

// MenuModel is the title screen.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	profile  string
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
	quitting bool
}

// NewMenuModel creates a new title screen model.
func NewMenuModel(width, height int, profile string) MenuModel {
	return MenuModel{
		width:   width,
		height:  height,
		profile: profile,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = menuChoices[m.cursor]
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	for _, line := range strings.Split(logo, "\n") {
		b.WriteString(theme.Logo.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n\n")

	for i, choice := range menuChoices {
		line := "  " + choice.String()
		style := theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + choice.String()
			style = theme.MenuItemActive
		}
		b.WriteString(style.Render(centerText(padRight(line, 12), m.width)))
		b.WriteString("\n")
	}

	if m.profile != "" {
		b.WriteString("\n")
		b.WriteString(theme.MenuDescription.Render(centerText("profile: "+m.profile, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(centerText(m.help.View(m.keys), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width. Styled text is measured by
// its printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func padRight(text string, width int) string {
	if n := len([]rune(text)); n < width {
		return text + strings.Repeat(" ", width-n)
	}
	return text
}
