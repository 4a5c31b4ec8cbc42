// Package cmd implements the hop command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hop",
	Short: "a quick launcher for your files, links and commands",
	Long: `hop - a quick launcher for your files, links and commands

Run without arguments to open the interactive picker: type a few
characters, pick a match, hit Enter. Entries live in
~/.config/hop/entries.yaml.`,
	RunE:          runPicker,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
