package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// State is the session state.
type State string

const (
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateOver    State = "game_over"
	StateQuit    State = "quit"
)

// Outcome describes what a single action or fall tick did.
type Outcome struct {
	Moved    bool // The active piece changed position
	Locked   bool // The active piece was committed to the board
	Lines    int  // Rows cleared by the lock
	Points   int  // Score gained by the lock
	GameOver bool // The lock ended the game
}

// Session is one game: a board, the active and next pieces, and the score.
// It is not safe for concurrent use; the caller serializes input and fall ticks.
type Session struct {
	id       string
	settings config.Settings
	rng      *rand.Rand
	log      *log.Logger

	board  *Board
	active *Piece
	next   *Piece

	score      int
	stats      Stats
	state      State
	generation uint64
}

// NewSession creates a session. A nil logger discards output.
func NewSession(settings config.Settings, seed int64, logger *log.Logger) *Session {
	settings = settings.Normalize()
	id := uuid.NewString()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		id:       id,
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
		log:      logger.With("session", id[:8]),
		board:    NewBoard(settings.Width, settings.BoardHeight()),
		state:    StatePlaying,
	}
}

// Start generates the first next piece and brings it into play.
func (s *Session) Start() {
	s.state = StatePlaying
	s.next = RandomPiece(s.rng, s.settings.Width)
	s.promote()
	s.log.Debug("session started", "width", s.settings.Width, "height", s.settings.Height)
}

// promote makes the next piece active and generates a new next piece.
func (s *Session) promote() {
	s.active = s.next
	s.active.Spawn(s.board)
	s.next = RandomPiece(s.rng, s.settings.Width)
	s.generation++
}

// Apply routes a player action to the active piece.
func (s *Session) Apply(action core.Action) Outcome {
	if s.active == nil || s.state == StateOver || s.state == StateQuit {
		return Outcome{}
	}

	switch action {
	case core.ActionPause:
		s.togglePause()
		return Outcome{}
	case core.ActionQuit:
		s.quit()
		return Outcome{}
	}

	if s.state == StatePaused {
		return Outcome{}
	}

	if action.Drops() {
		s.active.HardDrop(s.board)
		return s.lock()
	}

	switch action {
	case core.ActionLeft:
		return Outcome{Moved: s.active.MoveLeft(s.board)}
	case core.ActionRight:
		return Outcome{Moved: s.active.MoveRight(s.board)}
	case core.ActionRotateLeft:
		return Outcome{Moved: s.active.RotateLeft(s.board)}
	case core.ActionRotateRight:
		return Outcome{Moved: s.active.RotateRight(s.board)}
	case core.ActionDown:
		return s.softDrop()
	}
	return Outcome{}
}

// Tick advances the active piece one row, locking it when it has landed.
func (s *Session) Tick() Outcome {
	if s.active == nil || s.state != StatePlaying {
		return Outcome{}
	}
	return s.softDrop()
}

func (s *Session) softDrop() Outcome {
	if s.active.MoveDown(s.board) {
		return s.lock()
	}
	return Outcome{Moved: true}
}

func (s *Session) lock() Outcome {
	s.active.Lock(s.board)
	lines := s.board.CheckForLine()
	points := Points(lines)
	s.score += points
	s.stats.record(lines)

	s.log.Debug("piece locked",
		"shape", s.active.Shape().Name,
		"lines", lines,
		"points", points,
		"score", s.score)

	out := Outcome{Moved: true, Locked: true, Lines: lines, Points: points}
	if s.board.CheckFailure() {
		s.state = StateOver
		out.GameOver = true
		s.log.Info("game over", "score", s.score, "pieces", s.stats.Pieces, "lines", s.stats.Lines)
		return out
	}

	s.promote()
	return out
}

func (s *Session) togglePause() {
	if s.state == StatePaused {
		s.state = StatePlaying
	} else {
		s.state = StatePaused
	}
}

func (s *Session) quit() {
	s.active.Abandon()
	s.state = StateQuit
	s.log.Debug("session abandoned", "score", s.score)
}

// ResetGame clears the board and score and starts a new game, reseeding from
// the session's own random source.
func (s *Session) ResetGame() {
	s.board.Clear()
	s.score = 0
	s.stats = Stats{}
	s.rng = rand.New(rand.NewSource(s.rng.Int63()))
	s.Start()
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Settings returns the settings the session was created with.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Board returns the board of settled blocks.
func (s *Session) Board() *Board {
	return s.board
}

// Active returns the piece under control.
func (s *Session) Active() *Piece {
	return s.active
}

// Next returns the piece shown in the next panel.
func (s *Session) Next() *Piece {
	return s.next
}

// Score returns the current score. After game over it is final.
func (s *Session) Score() int {
	return s.score
}

// Stats returns the lock and clear counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Done reports whether the session has ended, by failure or by quitting.
func (s *Session) Done() bool {
	return s.state == StateOver || s.state == StateQuit
}

// Generation changes every time a new piece is brought into play. Fall ticks
// scheduled for an earlier generation are stale.
func (s *Session) Generation() uint64 {
	return s.generation
}

// GameState returns the platform-facing summary of the session.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.state == StateOver,
		Paused:   s.state == StatePaused,
	}
}

// Result returns the final score and statistics.
func (s *Session) Result() Result {
	return Result{
		SessionID: s.id,
		Score:     s.score,
		Stats:     s.stats,
		Abandoned: s.state == StateQuit,
	}
}
