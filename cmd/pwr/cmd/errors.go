package cmd

import (
	"errors"

	"github.com/pwrkit/pwr/internal/actuator"
	"github.com/pwrkit/pwr/internal/privilege"
	"github.com/pwrkit/pwr/internal/runner"
	"github.com/pwrkit/pwr/internal/state"
)

// ErrNoAction is returned when pwr is invoked without an action token.
var ErrNoAction = errors.New("no action specified")

// Exit codes, one per documented failure kind.
const (
	ExitOK              = 0
	ExitNoAction        = 1
	ExitBadArgument     = 2
	ExitGovernorWrite   = 3
	ExitStateWrite      = 4
	ExitStateRead       = 5 // reserved: a missing record reads as performance instead of failing
	ExitElevationFailed = 6
	ExitLaunchFailed    = 7
)

// ExitCode maps an Execute error to its documented exit code. An error
// carrying none of the known sentinels is an argument-level failure from
// flag or command parsing.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoAction):
		return ExitNoAction
	case errors.Is(err, actuator.ErrGovernorWrite):
		return ExitGovernorWrite
	case errors.Is(err, state.ErrWriteFailed):
		return ExitStateWrite
	case errors.Is(err, privilege.ErrElevationFailed):
		return ExitElevationFailed
	case errors.Is(err, runner.ErrLaunchFailed):
		return ExitLaunchFailed
	default:
		return ExitBadArgument
	}
}
