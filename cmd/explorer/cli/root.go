// Package cli wires the explorer's cobra commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "NGO providers data browser",
	Long: `explorer serves the NSW NGO providers dataset: a paginated,
filterable read API plus server-rendered pages, backed by a single
SQLite file. The dataset is populated offline with "explorer load".`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(loadCmd)
}
