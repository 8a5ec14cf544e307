package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pwrkit/pwr/internal/profile"
)

var powersaveCmd = &cobra.Command{
	Use:     "powersave",
	Aliases: []string{"ps"},
	Short:   "Switch to power-saving mode",
	Long: "Set the powersave CPU governor, select the integrated GPU, turn\n" +
		"wifi power management on, and restart the display manager.",
	Args: cobra.NoArgs,
	RunE: runPowersave,
}

func init() {
	rootCmd.AddCommand(powersaveCmd)
}

func runPowersave(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(logLevel)
	return newOrchestrator(logger).Apply(cmd.Context(), profile.Powersave)
}
