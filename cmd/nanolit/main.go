// Package main provides the nanolit CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nanolit",
	Short: "Nanoparticle-combination literature analyzer",
	Long: `nanolit classifies scientific articles by the nanoparticle materials
they discuss and tallies co-occurrence combinations.

It reads a Scopus-style CSV export, searches title/abstract/keyword text for
configured material variants, groups articles by the exact combination found,
and writes two artifacts:

  - a LaTeX table fragment (combination, frequency, citations)
  - a BibTeX file with one entry per cited article

Summaries are JSON by default for scripting; use --human for a readable
report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
