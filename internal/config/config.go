// Package config provides YAML-based game configuration loading and lenient
// parsing of settings typed into the menu.
package config

import "time"

// Config is the top-level layout of a tetris.yaml file.
type Config struct {
	Game Settings `yaml:"game"`
}

// Settings are chosen before a session starts and stay read-only during play.
type Settings struct {
	Width          int  `yaml:"width"`           // Board width in cells
	Height         int  `yaml:"height"`          // Visible board height in cells
	FallTime       int  `yaml:"fall_time_ms"`    // Milliseconds between automatic fall steps
	DropProjection bool `yaml:"drop_projection"` // Draw the landing outline of the active piece
}

const (
	// MinWidth is the narrowest board every shape fits on (the long piece is 4 wide).
	MinWidth = 4

	// BufferRows are the hidden spawn rows added above the configured height.
	BufferRows = 2
)

// FallInterval returns FallTime as a duration.
func (s Settings) FallInterval() time.Duration {
	return time.Duration(s.FallTime) * time.Millisecond
}

// BoardHeight returns the internal board height including the spawn rows.
func (s Settings) BoardHeight() int {
	return s.Height + BufferRows
}

// Normalize replaces out-of-range values with their defaults.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.Width < MinWidth {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.FallTime <= 0 {
		s.FallTime = def.FallTime
	}
	return s
}
