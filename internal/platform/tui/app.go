package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// AppOptions configures a terminal session.
type AppOptions struct {
	Settings config.Settings // Settings the first game uses
	Store    *storage.Store  // Saves edited settings; may be nil
	Profile  string          // Store key for edited settings
	Seed     int64           // 0 seeds every game from the clock
	Logger   *log.Logger
	Width    int
	Height   int

	// Direct skips the title screen, starts a game immediately and ends the
	// program once that game is over.
	Direct bool
}

type view int

const (
	viewTitle view = iota
	viewSettings
	viewHelp
	viewGame
	viewResults
)

// AppModel manages the full session flow:
// title -> settings/help -> title, and title -> game -> results -> title.
type AppModel struct {
	opts     AppOptions
	settings config.Settings
	logger   *log.Logger
	view     view
	width    int
	height   int
	games    int
	quitting bool

	menu     MenuModel
	editor   SettingsModel
	helpView HelpModel
	game     GameModel
	results  ResultsModel
}

// NewAppModel creates the top-level model.
func NewAppModel(opts AppOptions) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	m := AppModel{
		opts:     opts,
		settings: opts.Settings.Normalize(),
		logger:   logger,
		width:    opts.Width,
		height:   opts.Height,
		menu:     NewMenuModel(opts.Width, opts.Height, opts.Profile),
	}

	if opts.Direct {
		m.startGame()
	}
	return m
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// seed returns the seed of the next game. A fixed seed still varies between
// games of the same session.
func (m *AppModel) seed() int64 {
	if m.opts.Seed != 0 {
		return m.opts.Seed + int64(m.games)
	}
	return time.Now().UnixNano()
}

func (m *AppModel) startGame() {
	m.game = NewGameModel(m.settings, core.RuntimeConfig{
		ScreenW: m.width,
		ScreenH: m.height,
		Seed:    m.seed(),
	}, m.logger)
	m.games++
	m.view = viewGame
	m.logger.Info("game started", "session", m.game.Session().ID(), "profile", m.opts.Profile)
}

func (m *AppModel) toTitle() {
	m.menu = NewMenuModel(m.width, m.height, m.opts.Profile)
	m.view = viewTitle
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.view {
	case viewSettings:
		return m.updateSettings(msg)
	case viewHelp:
		return m.updateHelp(msg)
	case viewGame:
		return m.updateGame(msg)
	case viewResults:
		return m.updateResults(msg)
	default:
		return m.updateTitle(msg)
	}
}

func (m AppModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menu, ok := newMenu.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		m.startGame()
		return m, m.game.Init()
	case ChoiceSettings:
		m.editor = NewSettingsModel(m.settings, m.width, m.height)
		m.view = viewSettings
		return m, m.editor.Init()
	case ChoiceHelp:
		m.helpView = NewHelpModel(m.width, m.height)
		m.view = viewHelp
		return m, m.helpView.Init()
	}

	return m, cmd
}

func (m AppModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		return m.quit()
	}

	newEditor, cmd := m.editor.Update(msg)
	if editor, ok := newEditor.(SettingsModel); ok {
		m.editor = editor
	}

	switch {
	case m.editor.Applied():
		m.settings = m.editor.Settings()
		m.saveSettings()
		m.toTitle()
		return m, nil
	case m.editor.WantsBack():
		m.toTitle()
		return m, nil
	}

	return m, cmd
}

// saveSettings stores the current settings under the session profile.
func (m *AppModel) saveSettings() {
	if m.opts.Store == nil {
		return
	}
	if err := m.opts.Store.SaveSettings(m.opts.Profile, m.settings); err != nil {
		m.logger.Warn("could not save settings", "profile", m.opts.Profile, "error", err)
		return
	}
	m.logger.Debug("settings saved", "profile", m.opts.Profile, "settings", m.settings)
}

func (m AppModel) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHelp, cmd := m.helpView.Update(msg)
	if h, ok := newHelp.(HelpModel); ok {
		m.helpView = h
	}

	switch {
	case m.helpView.IsQuitting():
		return m.quit()
	case m.helpView.WantsBack():
		m.toTitle()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	if game, ok := newGame.(GameModel); ok {
		m.game = game
	}

	if m.game.IsExiting() {
		return m.quit()
	}

	if m.game.Done() {
		result := m.game.Result()
		m.logger.Info("game ended",
			"session", result.SessionID,
			"score", result.Score,
			"lines", result.Stats.Lines,
			"abandoned", result.Abandoned)

		if result.Abandoned {
			if m.opts.Direct {
				return m.quit()
			}
			m.toTitle()
			return m, nil
		}

		m.results = NewResultsModel(result, m.width, m.height)
		m.view = viewResults
		return m, m.results.Init()
	}

	return m, cmd
}

func (m AppModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newResults, cmd := m.results.Update(msg)
	if r, ok := newResults.(ResultsModel); ok {
		m.results = r
	}

	switch {
	case m.results.IsQuitting():
		return m.quit()
	case m.results.WantsBack():
		if m.opts.Direct {
			return m.quit()
		}
		m.toTitle()
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewSettings:
		return m.editor.View()
	case viewHelp:
		return m.helpView.View()
	case viewGame:
		return m.game.View()
	case viewResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}

// Settings returns the settings the next game will use.
func (m AppModel) Settings() config.Settings {
	return m.settings
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
