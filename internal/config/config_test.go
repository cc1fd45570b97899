package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg.Game != DefaultSettings() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg.Game, DefaultSettings())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  width: 12\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Game.Width != 12 {
		t.Errorf("Width = %d, expected 12", cfg.Game.Width)
	}
	if cfg.Game.Height != 20 || cfg.Game.FallTime != 800 || !cfg.Game.DropProjection {
		t.Errorf("missing keys should keep defaults, got %+v", cfg.Game)
	}
}

func TestParseNormalizesInvalidValues(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  width: 2\n  height: -1\n  fall_time_ms: 0\n  drop_projection: false\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := Settings{Width: 10, Height: 20, FallTime: 800, DropProjection: false}
	if cfg.Game != expected {
		t.Errorf("normalized settings = %+v, expected %+v", cfg.Game, expected)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("game: [unclosed")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("game:\n  fall_time_ms: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.FallTime != 250 {
		t.Errorf("FallTime = %d, expected 250", cfg.Game.FallTime)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing custom path")
	}
	if cfg.Game != DefaultSettings() {
		t.Errorf("failed Load should still return defaults, got %+v", cfg.Game)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Config{Game: Settings{Width: 8, Height: 16, FallTime: 500, DropProjection: false}}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestSettingsHelpers(t *testing.T) {
	s := DefaultSettings()
	if s.FallInterval() != 800*time.Millisecond {
		t.Errorf("FallInterval() = %v, expected 800ms", s.FallInterval())
	}
	if s.BoardHeight() != 22 {
		t.Errorf("BoardHeight() = %d, expected 22", s.BoardHeight())
	}
}
