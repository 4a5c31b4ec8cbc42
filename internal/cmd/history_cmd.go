package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/hop/internal/config"
	"github.com/runger/hop/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent launches",
	Long: `Show recent launches, newest first.

Examples:
  hop history
  hop history -n 50`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of launches to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	paths := config.DefaultPaths()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		fmt.Printf("%shistory is disabled%s (history.enabled = false)\n", colorDim, colorReset)
		return nil
	}

	store, err := storage.Open(cfg.ResolvedDBPath(paths))
	if err != nil {
		return err
	}
	defer store.Close()

	launches, err := store.Recent(context.Background(), historyLimit)
	if err != nil {
		return err
	}
	if len(launches) == 0 {
		fmt.Printf("%sno launches recorded yet%s\n", colorDim, colorReset)
		return nil
	}

	for _, l := range launches {
		fmt.Printf("%s%s%s  %s%s%s  %s%s%s\n",
			colorDim, l.LaunchedAt.Format("2006-01-02 15:04"), colorReset,
			colorBold, l.EntryName, colorReset,
			colorCyan, l.Target, colorReset)
	}
	return nil
}
