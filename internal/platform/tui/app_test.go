package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func updateApp(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		am, ok := next.(AppModel)
		require.True(t, ok)
		m = am
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestApp(opts AppOptions) AppModel {
	if opts.Settings == (config.Settings{}) {
		opts.Settings = config.DefaultSettings()
	}
	if opts.Width == 0 {
		opts.Width, opts.Height = 80, 30
	}
	if opts.Seed == 0 {
		opts.Seed = 11
	}
	return NewAppModel(opts)
}

func TestAppStartsOnTitle(t *testing.T) {
	m := newTestApp(AppOptions{})

	assert.Equal(t, viewTitle, m.view)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Play")
}

func TestAppPlayStartsGame(t *testing.T) {
	m := newTestApp(AppOptions{})

	m, cmd := updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	assert.NotNil(t, cmd, "starting a game schedules the first fall tick")
	assert.Equal(t, 10, m.game.Session().Board().Width())
}

func TestAppQuitGameReturnsToTitle(t *testing.T) {
	m := newTestApp(AppOptions{})

	m, _ = updateApp(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
	)
	assert.Equal(t, viewTitle, m.view)
	assert.Equal(t, 1, m.games)
}

func TestAppDirectQuitEndsProgram(t *testing.T) {
	m := newTestApp(AppOptions{Direct: true})
	require.Equal(t, viewGame, m.view)
	assert.NotNil(t, m.Init())

	m, cmd := updateApp(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestAppCtrlCExits(t *testing.T) {
	m := newTestApp(AppOptions{})

	_, cmd := updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestAppGameOverShowsResults(t *testing.T) {
	m := newTestApp(AppOptions{Settings: config.Settings{Width: 5, Height: 1, FallTime: 100}})

	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 10 && !m.game.Session().Done(); i++ {
		m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	require.True(t, m.game.Session().Done())
	assert.Equal(t, viewGame, m.view, "the final board stays up until enter")

	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewResults, m.view)
	assert.Contains(t, m.View(), "GAME OVER")

	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, viewTitle, m.view)
}

func TestAppSettingsSavedToStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := newTestApp(AppOptions{Store: store, Profile: "alice"})

	m, _ = updateApp(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.Equal(t, viewSettings, m.view)

	m, _ = updateApp(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("14")},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, viewTitle, m.view)
	assert.Equal(t, 14, m.Settings().Width)

	saved, ok, err := store.LoadSettings("alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, m.Settings(), saved)

	// The next game uses the edited width.
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	assert.Equal(t, 14, m.game.Session().Board().Width())
}

func TestAppSettingsBackKeepsSettings(t *testing.T) {
	m := newTestApp(AppOptions{})

	m, _ = updateApp(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	assert.Equal(t, viewTitle, m.view)
	assert.Equal(t, config.DefaultSettings(), m.Settings())
}

func TestAppSeedVariesPerGame(t *testing.T) {
	m := newTestApp(AppOptions{Seed: 100})

	assert.Equal(t, int64(100), m.seed())
	m.games = 3
	assert.Equal(t, int64(103), m.seed())
}
