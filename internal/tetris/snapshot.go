package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot captures the session for determinism tests.
type Snapshot struct {
	State      State
	Score      int
	Generation uint64
	Board      []Block
	Active     []core.Cell
	ActiveName string
	NextName   string
	Stats      Stats
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Score:      s.score,
		Generation: s.generation,
		Board:      s.board.Blocks(),
		Stats:      s.stats,
	}
	if s.active != nil {
		snap.Active = s.active.Blocks()
		snap.ActiveName = s.active.Shape().Name
	}
	if s.next != nil {
		snap.NextName = s.next.Shape().Name
	}
	return snap
}
