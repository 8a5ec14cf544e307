// Package cmd implements the pwr CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	noRestart bool
	logLevel  string
)

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(versionTemplate())
}

func versionTemplate() string {
	return fmt.Sprintf("pwr version {{.Version}}\ncommit: %s\nbuilt: %s\nLicensed under the MIT License.\n", buildCommit, buildDate)
}

var rootCmd = &cobra.Command{
	Use:   "pwr",
	Short: "pwr switches a laptop between performance and power-saving profiles",
	Long: "pwr is a privileged controller that switches a laptop between the\n" +
		"performance and powersave profiles. A profile switch sets the CPU\n" +
		"frequency governor, selects the GPU vendor, toggles wifi power\n" +
		"management, and restarts the display manager. The selected profile\n" +
		"is persisted and reported by query.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Invoked only when no action token was given; unknown tokens are
		// rejected by cobra before this runs.
		return ErrNoAction
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&noRestart, "norestart", "n", false,
		"do not restart the display manager after changing profiles")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(versionTemplate())
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
