package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runger/hop/internal/config"
	"github.com/runger/hop/internal/launch"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and entries files",
	Long: `Validate the config and entries files without launching anything.

Reports the first problem found: the entries load is all-or-nothing,
so one bad entry means the picker would start empty.

Examples:
  hop check`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := config.DefaultPaths()

	fmt.Printf("%shop check%s\n", colorBold, colorReset)

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  config:  %sinvalid%s  %v\n", colorRed, colorReset, err)
		return err
	}
	fmt.Printf("  config:  %sok%s  %s\n", colorGreen, colorReset, describeFile(paths.ConfigFile()))

	entriesPath := cfg.ResolvedEntriesFile(paths)
	store, err := launch.LoadStore(entriesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("  entries: %smissing%s  %s\n", colorYellow, colorReset, entriesPath)
			return nil
		}
		fmt.Printf("  entries: %sinvalid%s  %v\n", colorRed, colorReset, err)
		return err
	}
	fmt.Printf("  entries: %sok%s  %d entries in %s\n", colorGreen, colorReset, store.Len(), entriesPath)

	return nil
}

func describeFile(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + colorDim + " (not found, using defaults)" + colorReset
	}
	return path
}
