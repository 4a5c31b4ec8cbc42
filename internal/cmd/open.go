package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/hop/internal/config"
	"github.com/runger/hop/internal/logging"
	"github.com/runger/hop/internal/platform"
	"github.com/runger/hop/internal/storage"
)

var openCmd = &cobra.Command{
	Use:   "open <query>",
	Short: "Launch the best match for a query",
	Long: `Launch the best match for a query without opening the picker.

The query is ranked exactly as in the picker and the top entry is
triggered. Keyword entries substitute the query remainder as usual.

Examples:
  hop open docs
  hop open "y how do i exit vim"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	paths := config.DefaultPaths()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := loadEntries()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	matches := store.FindMatches(query)
	if len(matches) == 0 {
		return fmt.Errorf("no entry matches %q", query)
	}

	entry := store.Get(matches[0])
	launcher := platform.NewLauncher(logging.Discard())
	if err := entry.HandleSelection(launcher, query); err != nil {
		return err
	}

	if cfg.History.Enabled {
		// Best-effort: a broken history db must not fail the launch.
		if history, herr := storage.Open(cfg.ResolvedDBPath(paths)); herr == nil {
			_ = history.RecordLaunch(context.Background(),
				entry.Name, entry.FormatSelection(query), query)
			history.Close()
		}
	}

	fmt.Printf("%s%s%s\n", colorGreen, entry.Name, colorReset)
	return nil
}
