package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags.
	verbose bool
	output  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lazyseq",
	Short: "Run lazy sequence pipelines defined in YAML",
	Long: `Lazyseq evaluates lazy sequence pipelines defined in YAML files.

A pipeline names a source sequence (naturals, a range, a list, fibonacci,
primes, or numbers selected from a JSON document), a chain of non-strict
operations with Lua expressions, and the terminal operation that forces
evaluation. Nothing is computed until the terminal demands it.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&output, "output", "text", "Output format (text, json, yaml)")

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
