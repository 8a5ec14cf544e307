package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle",
	Aliases: []string{"to"},
	Short:   "Switch to the opposite profile",
	Long: "Read the persisted profile and switch to the opposite one. A\n" +
		"missing or unknown record counts as performance, so the first\n" +
		"toggle on a fresh machine lands on powersave.",
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(logLevel)

	next, err := newOrchestrator(logger).Toggle(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), next)
	return nil
}
