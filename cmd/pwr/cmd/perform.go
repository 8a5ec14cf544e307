package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pwrkit/pwr/internal/profile"
)

var performCmd = &cobra.Command{
	Use:     "perform",
	Aliases: []string{"pe"},
	Short:   "Switch to performance mode",
	Long: "Set the performance CPU governor, select the discrete GPU, turn\n" +
		"wifi power management off, and restart the display manager.",
	Args: cobra.NoArgs,
	RunE: runPerform,
}

func init() {
	rootCmd.AddCommand(performCmd)
}

func runPerform(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(logLevel)
	return newOrchestrator(logger).Apply(cmd.Context(), profile.Performance)
}
