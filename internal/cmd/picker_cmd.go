package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/runger/hop/internal/config"
	"github.com/runger/hop/internal/icon"
	"github.com/runger/hop/internal/launch"
	"github.com/runger/hop/internal/logging"
	"github.com/runger/hop/internal/picker"
	"github.com/runger/hop/internal/platform"
	"github.com/runger/hop/internal/storage"
)

// runPicker is the root command: the interactive launcher.
func runPicker(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("hop needs a terminal; use 'hop open <query>' for scripting")
	}
	if os.Getenv("TERM") == "dumb" {
		return errors.New("hop cannot run on a dumb terminal")
	}

	paths := config.DefaultPaths()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return err
	}

	// One picker per terminal session; a second invocation exits early
	// instead of fighting over the launch history database.
	unlock, err := acquireLock(paths.LockFile())
	if err != nil {
		return err
	}
	defer unlock()

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = paths.LogFile()
	}
	logger, logFile, err := logging.NewFileLogger(logPath, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer logFile.Close()

	store, err := launch.LoadStore(cfg.ResolvedEntriesFile(paths))
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}
	logger.Info("entries loaded", "count", store.Len())

	var history *storage.HistoryStore
	if cfg.History.Enabled {
		history, err = storage.Open(cfg.ResolvedDBPath(paths))
		if err != nil {
			// History is best-effort; the picker works without it.
			logger.Warn("history database unavailable", "error", err)
			history = nil
		} else {
			defer history.Close()
		}
	}

	worker := icon.NewWorker(func(s icon.Settings) icon.Resolver {
		return platform.NewResolver(s, logger)
	})

	model := picker.NewModel(picker.Options{
		Store:            store,
		Launcher:         platform.NewLauncher(logger),
		Cache:            icon.NewCache(),
		Events:           worker.Start(),
		Settings:         cfg.IconSettings(),
		History:          history,
		Logger:           logger,
		MaxResults:       cfg.UI.MaxResults,
		ShowDescriptions: cfg.UI.ShowDescriptions,
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	m := final.(picker.Model)
	if m.Err() != nil {
		return m.Err()
	}
	if name := m.Launched(); name != "" {
		fmt.Printf("%s%s%s\n", colorGreen, name, colorReset)
	}
	return nil
}
