// Package cmd holds the portfolio command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Solutions with AAQIL portfolio site",
	Long: `portfolio serves the Solutions with AAQIL single-page portfolio:
projects, skills, experience, a contact form relayed by email and a
light/dark theme.

Configuration is read from the environment and from a .env file in the
working directory.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
