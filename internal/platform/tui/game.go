package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// GameModel runs one session. Key presses and fall ticks both arrive through
// Update, so the session only ever sees one of them at a time.
type GameModel struct {
	session *tetris.Session
	screen  *core.Screen
	keys    GameKeyMap
	help    help.Model
	width   int
	height  int
	done    bool
	exiting bool
}

// NewGameModel creates a game model and starts its session.
func NewGameModel(settings config.Settings, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	session := tetris.NewSession(settings, cfg.Seed, logger)
	session.Start()

	return GameModel{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, gameScreenHeight(cfg.ScreenH)),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// gameScreenHeight leaves the last terminal line for the help footer.
func gameScreenHeight(height int) int {
	if height > 1 {
		return height - 1
	}
	return height
}

// Init starts the fall tick chain for the first piece.
func (m GameModel) Init() tea.Cmd {
	return m.nextTick()
}

func (m GameModel) nextTick() tea.Cmd {
	return fallTickCmd(m.session.Settings().FallInterval(), m.session.ID(), m.session.Generation())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, gameScreenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	case FallTickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		m.exiting = true
		return m, nil
	}

	if m.session.GameState().GameOver {
		if key.Matches(msg, m.keys.Continue) || key.Matches(msg, m.keys.Quit) {
			m.done = true
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	gen := m.session.Generation()
	m.session.Apply(action)

	if m.session.State() == tetris.StateQuit {
		m.done = true
		return m, nil
	}

	// A lock brought a new piece into play: start its own tick chain.
	if m.session.Generation() != gen {
		return m, m.nextTick()
	}
	return m, nil
}

// handleTick processes fall ticks. Stale ticks are dropped, which ends
// their chain.
func (m GameModel) handleTick(msg FallTickMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.session.ID() || msg.Gen != m.session.Generation() || m.session.Done() {
		return m, nil
	}

	m.session.Tick()

	if m.session.Done() {
		return m, nil
	}
	return m, m.nextTick()
}

// View renders the game.
func (m GameModel) View() string {
	m.session.Render(m.screen)

	helpView := m.help.View(m.keys)
	if m.session.GameState().GameOver {
		helpView = m.help.ShortHelpView([]key.Binding{m.keys.Continue, m.keys.Exit})
	}
	return RenderScreen(m.screen) + "\n" + GetTheme().Help.Render(helpView)
}

// Session returns the running session.
func (m GameModel) Session() *tetris.Session {
	return m.session
}

// Result returns the session result.
func (m GameModel) Result() tetris.Result {
	return m.session.Result()
}

// Done returns true once the player has quit or acknowledged game over.
func (m GameModel) Done() bool {
	return m.done
}

// IsExiting returns true if the player asked to leave the program.
func (m GameModel) IsExiting() bool {
	return m.exiting
}
