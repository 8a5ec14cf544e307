package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pwrkit/pwr/internal/actuator"
	"github.com/pwrkit/pwr/internal/probe"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the persisted profile and capability report",
	Long: "Print the persisted profile plus which control interfaces exist\n" +
		"on this machine. Read-only: no privilege is required.",
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(logLevel)
	prober := probe.NewSystemProber(logger)

	cfg := actuator.Config{}
	cfg.ApplyDefaults()

	governors, err := filepath.Glob(cfg.GovernorPattern)
	if err != nil {
		return fmt.Errorf("pwr status: %w", err)
	}

	iface, found := prober.WirelessInterfaceName()
	if !found {
		iface = "none found"
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Profile:            %s\n", newStore(logger).Read())
	fmt.Fprintf(w, "cpufreq governors:  %d\n", len(governors))
	fmt.Fprintf(w, "prime-select:       %s\n", presence(prober.ExecutableAvailable(cfg.PrimeSelectPath)))
	fmt.Fprintf(w, "iwconfig:           %s\n", presence(prober.ExecutableAvailable(cfg.IwconfigPath)))
	fmt.Fprintf(w, "systemctl:          %s\n", presence(prober.ExecutableAvailable(cfg.SystemctlPath)))
	fmt.Fprintf(w, "wireless interface: %s\n", iface)

	return nil
}

func presence(available bool) string {
	if available {
		return "present"
	}
	return "absent"
}
