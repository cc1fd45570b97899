package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// newLogger returns the CLI logger and a function that closes its file.
// The terminal belongs to the game, so logs are dropped unless --log-file is set.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the settings database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open settings database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// resolveSettings merges the config file with the settings saved for the
// current profile. Saved settings win.
func resolveSettings(store *storage.Store) config.Settings {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	settings := cfg.Game

	if store == nil {
		return settings
	}
	saved, ok, err := store.LoadSettings(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load profile %q: %v\n", flagProfile, err)
		return settings
	}
	if ok {
		settings = saved
	}
	return settings
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// run starts a local terminal session. override, if set, adjusts the resolved
// settings before the first game.
func run(direct bool, override func(config.Settings) config.Settings) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	settings := resolveSettings(store)
	if override != nil {
		settings = override(settings)
	}

	width, height := terminalSize()
	runErr := tui.Run(tui.AppOptions{
		Settings: settings,
		Store:    store,
		Profile:  flagProfile,
		Seed:     flagSeed,
		Logger:   logger,
		Width:    width,
		Height:   height,
		Direct:   direct,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
