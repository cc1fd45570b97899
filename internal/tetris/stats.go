package tetris

// Stats counts what happened during a session.
type Stats struct {
	Pieces int    // Pieces locked
	Lines  int    // Total rows cleared
	Clears [5]int // Clears[n] is how many locks cleared exactly n rows
}

func (s *Stats) record(lines int) {
	s.Pieces++
	s.Lines += lines
	if lines >= 0 && lines < len(s.Clears) {
		s.Clears[lines]++
	}
}

// Result is the outcome of a finished session.
type Result struct {
	SessionID string
	Score     int
	Stats     Stats
	Abandoned bool // The player quit before the game ended
}
