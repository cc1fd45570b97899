package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// SettingsModel edits the game settings as raw text fields. Values are only
// parsed when the whole list is applied; a value that does not parse keeps
// the previous setting.
type SettingsModel struct {
	current  config.Settings
	fields   []config.Field
	cursor   int
	editing  bool
	input    textinput.Model
	keys     SettingsKeyMap
	help     help.Model
	width    int
	height   int
	applied  bool
	back     bool
	settings config.Settings
}

// NewSettingsModel creates a settings editor for current.
func NewSettingsModel(current config.Settings, width, height int) SettingsModel {
	ti := textinput.New()
	ti.Prompt = "Input: "
	ti.CharLimit = 32
	ti.Width = 24

	return SettingsModel{
		current:  current,
		fields:   config.Fields(current),
		input:    ti,
		keys:     DefaultSettingsKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
		settings: current,
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SettingsModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Input):
		m.editing = true
		m.input.SetValue("")
		m.input.Placeholder = m.fields[m.cursor].Value
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Apply):
		m.settings = config.ParseSettings(m.current, m.fields)
		m.applied = true
	case key.Matches(msg, m.keys.Back):
		m.back = true
	}
	return m, nil
}

func (m SettingsModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Store):
		m.fields[m.cursor].Value = m.input.Value()
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SettingsModel) closeInput() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

// View renders the settings list.
func (m SettingsModel) View() string {
	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.MenuTitle.Render(centerText("SETTINGS", m.width)))
	b.WriteString("\n\n")

	left := (m.width - 32) / 2
	if left < 0 {
		left = 0
	}
	indent := strings.Repeat(" ", left)

	for i, f := range m.fields {
		b.WriteString(indent)
		if i == m.cursor {
			b.WriteString(theme.MenuItemActive.Render("> " + f.String()))
		} else {
			b.WriteString(theme.MenuItemNormal.Render("  " + f.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(indent)
	if m.editing {
		b.WriteString(theme.InputPrompt.Render(m.input.View()))
	} else {
		b.WriteString(theme.Notice.Render("Press Tab to input."))
	}
	b.WriteString("\n\n")

	var helpView string
	if m.editing {
		helpView = m.help.ShortHelpView([]key.Binding{m.keys.Store, m.keys.Cancel})
	} else {
		helpView = m.help.View(m.keys)
	}
	b.WriteString(theme.Help.Render(centerText(helpView, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Fields returns the raw field values being edited.
func (m SettingsModel) Fields() []config.Field {
	return m.fields
}

// Editing returns true while the input line is open.
func (m SettingsModel) Editing() bool {
	return m.editing
}

// Applied returns true once the fields have been applied.
func (m SettingsModel) Applied() bool {
	return m.applied
}

// WantsBack returns true if the user left without applying.
func (m SettingsModel) WantsBack() bool {
	return m.back
}

// Settings returns the applied settings. Before Apply it returns the settings
// the editor was opened with.
func (m SettingsModel) Settings() config.Settings {
	return m.settings
}
