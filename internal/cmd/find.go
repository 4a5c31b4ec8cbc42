package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/hop/internal/config"
	"github.com/runger/hop/internal/launch"
)

var findLimit int

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "List entries matching a query",
	Long: `List entries matching a query, best match first.

This is the picker's ranking without the picker: useful for scripting
and for checking why an entry does or does not match.

Examples:
  hop find docs
  hop find "y kernel panic"
  hop find -n 3 ba`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().IntVarP(&findLimit, "limit", "n", 0, "maximum number of matches (0 = all)")
}

func runFind(cmd *cobra.Command, args []string) error {
	store, err := loadEntries()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	matches := store.FindMatches(query)
	if len(matches) == 0 {
		fmt.Printf("%sno matches%s\n", colorDim, colorReset)
		return nil
	}
	if findLimit > 0 && len(matches) > findLimit {
		matches = matches[:findLimit]
	}

	for _, id := range matches {
		entry := store.Get(id)
		fmt.Printf("%s%s%s  %s%s%s\n",
			colorBold, entry.FormatName(query), colorReset,
			colorDim, entry.FormatSelection(query), colorReset)
	}
	return nil
}

// loadEntries loads config and the entries file for the one-shot
// subcommands.
func loadEntries() (*launch.Store, error) {
	paths := config.DefaultPaths()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	store, err := launch.LoadStore(cfg.ResolvedEntriesFile(paths))
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	return store, nil
}
