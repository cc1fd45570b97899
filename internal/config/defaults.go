package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultSettings returns the built-in game settings.
func DefaultSettings() Settings {
	return Settings{
		Width:          10,
		Height:         20,
		FallTime:       800,
		DropProjection: true,
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{Game: DefaultSettings()}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
