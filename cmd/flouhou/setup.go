package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flouhou/internal/config"
	"github.com/vovakirdan/flouhou/internal/platform/tui"
	"github.com/vovakirdan/flouhou/internal/storage"
)

// loadConfig resolves the config file and applies command line overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagTPS > 0 {
		cfg.Display.TickRate = flagTPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, source, nil
}

// mustLoadConfig loads the config or exits.
func mustLoadConfig() (config.Config, string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg, source
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flouhou",
	})
	// Validate already checked the level
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens the log destination for terminal modes, where stderr
// belongs to the UI. An empty path discards logs.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openStore opens run history. Games still work without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}

// checkTerminal makes sure stdout is an interactive terminal and warns when
// it is too small for the playfield.
func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal; use 'flouhou sim' for headless runs")
	}
	if w, h, err := term.GetSize(fd); err == nil {
		if w < tui.MinWidth || h < tui.MinHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, flouhou needs at least %dx%d\n",
				w, h, tui.MinWidth, tui.MinHeight)
		}
	}
	return nil
}

// newDeps assembles the front end dependencies.
func newDeps(cfg config.Config, store *storage.Store, logger *log.Logger) tui.Deps {
	return tui.Deps{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Player: flagPlayer,
	}
}
