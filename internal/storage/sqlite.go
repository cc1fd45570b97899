// Package storage provides SQLite-based persistence for settings profiles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "default"

// Store manages the SQLite database connection for settings persistence.
type Store struct {
	db *sql.DB
}

// Profile is a named set of saved settings.
type Profile struct {
	Name      string
	Settings  config.Settings
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			profile TEXT PRIMARY KEY,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			fall_time_ms INTEGER NOT NULL,
			drop_projection INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSettings stores settings under profile, replacing any earlier values.
func (s *Store) SaveSettings(profile string, settings config.Settings) error {
	if profile == "" {
		profile = DefaultProfile
	}

	_, err := s.db.Exec(
		`INSERT INTO settings (profile, width, height, fall_time_ms, drop_projection, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
		   width = excluded.width,
		   height = excluded.height,
		   fall_time_ms = excluded.fall_time_ms,
		   drop_projection = excluded.drop_projection,
		   updated_at = CURRENT_TIMESTAMP`,
		profile, settings.Width, settings.Height, settings.FallTime, settings.DropProjection,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings for %s: %w", profile, err)
	}
	return nil
}

// LoadSettings returns the settings saved under profile.
// The boolean is false when the profile has never been saved.
func (s *Store) LoadSettings(profile string) (config.Settings, bool, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	var settings config.Settings
	err := s.db.QueryRow(
		`SELECT width, height, fall_time_ms, drop_projection
		 FROM settings
		 WHERE profile = ?`,
		profile,
	).Scan(&settings.Width, &settings.Height, &settings.FallTime, &settings.DropProjection)

	if errors.Is(err, sql.ErrNoRows) {
		return config.Settings{}, false, nil
	}
	if err != nil {
		return config.Settings{}, false, fmt.Errorf("storage: cannot load settings for %s: %w", profile, err)
	}

	return settings.Normalize(), true, nil
}

// Profiles lists every saved profile, most recently updated first.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query(
		`SELECT profile, width, height, fall_time_ms, drop_projection, updated_at
		 FROM settings
		 ORDER BY updated_at DESC, profile ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var updatedAt any
		if err := rows.Scan(&p.Name, &p.Settings.Width, &p.Settings.Height, &p.Settings.FallTime, &p.Settings.DropProjection, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.UpdatedAt = parseTime(updatedAt)
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return profiles, nil
}

// DeleteSettings removes a saved profile. Deleting a missing profile is not an error.
func (s *Store) DeleteSettings(profile string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot delete settings for %s: %w", profile, err)
	}
	return nil
}

// parseTime handles the datetime column as either time.Time or string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
