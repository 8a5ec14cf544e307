// Package actuator applies individual hardware and OS settings for an
// operating profile. Each actuator controls one disjoint subsystem, is
// idempotent, and skips itself when its backing capability is absent.
package actuator

import (
	"context"

	"github.com/pwrkit/pwr/internal/profile"
)

// Outcome classifies what one actuator invocation did.
type Outcome string

const (
	// Applied means the setting was written or the tool ran successfully.
	Applied Outcome = "applied"

	// Skipped means the backing capability is absent or the actuator was
	// suppressed by a flag. Skipping counts as success.
	Skipped Outcome = "skipped"

	// Failed means the tool ran and failed. Only the governor escalates a
	// failure into an error; the others log and let the transition proceed.
	Failed Outcome = "failed"
)

// Result is the outcome of one actuator invocation plus a short detail
// string (what was applied, why it was skipped, how it failed).
type Result struct {
	Outcome Outcome
	Detail  string
}

func applied(detail string) Result {
	return Result{Outcome: Applied, Detail: detail}
}

func skipped(reason string) Result {
	return Result{Outcome: Skipped, Detail: reason}
}

func failed(detail string) Result {
	return Result{Outcome: Failed, Detail: detail}
}

// Actuator sets one device knob to the value a profile calls for. A Result
// with a nil error never blocks the rest of a transition; a non-nil error
// aborts it.
type Actuator interface {
	Name() string
	Apply(ctx context.Context, p profile.Profile) (Result, error)
}
