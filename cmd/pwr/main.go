// Package main is the entry point for the pwr binary.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pwrkit/pwr/cmd/pwr/cmd"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pwr: %v\n", err)
		if errors.Is(err, cmd.ErrNoAction) {
			fmt.Fprintln(os.Stderr, "Run `pwr --help` for help.")
		}
		os.Exit(cmd.ExitCode(err))
	}
}
