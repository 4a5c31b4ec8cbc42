// Package main is the entry point for the hop CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runger/hop/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hop:", err)
		os.Exit(1)
	}
}
