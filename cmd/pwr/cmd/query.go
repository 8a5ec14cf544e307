package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:     "query",
	Aliases: []string{"qu"},
	Short:   "Print the current persisted profile",
	Long: "Print the persisted profile, either performance or powersave.\n" +
		"Read-only: no privilege is required and no setting is touched.",
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(logLevel)
	fmt.Fprintln(cmd.OutOrStdout(), newStore(logger).Read())
	return nil
}
