// Package transition sequences the device actuators for a profile switch
// and commits the result to the state store.
package transition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pwrkit/pwr/internal/actuator"
	"github.com/pwrkit/pwr/internal/privilege"
	"github.com/pwrkit/pwr/internal/profile"
)

// Store is the subset of the state store the orchestrator needs.
type Store interface {
	Read() profile.Profile
	Write(profile.Profile) error
}

// Orchestrator switches the machine between profiles. Actuators run under
// elevated privilege strictly in order, cheapest knob first and the
// disruptive display-manager restart last; the state record is committed
// only after the full actuator pass completes, so it always reflects the
// most recent successful transition.
type Orchestrator struct {
	elevator  privilege.Elevator
	actuators []actuator.Actuator
	store     Store
	logger    *slog.Logger
}

// New returns an Orchestrator running the given actuators in slice order.
func New(elevator privilege.Elevator, actuators []actuator.Actuator, store Store, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		elevator:  elevator,
		actuators: actuators,
		store:     store,
		logger:    logger.With("component", "transition"),
	}
}

// Apply switches the machine to p and records it. An actuator error aborts
// the pass (privilege is still restored) and leaves the previous record in
// place; there is no rollback of knobs already set.
func (o *Orchestrator) Apply(ctx context.Context, p profile.Profile) error {
	o.logger.Info("switching profile", "profile", p)

	err := o.elevator.WithElevated(func() error {
		for _, a := range o.actuators {
			res, err := a.Apply(ctx, p)
			if err != nil {
				return fmt.Errorf("transition: %s: %w", a.Name(), err)
			}
			switch res.Outcome {
			case actuator.Skipped:
				o.logger.Info("actuator skipped", "actuator", a.Name(), "reason", res.Detail)
			case actuator.Failed:
				o.logger.Warn("actuator failed, continuing", "actuator", a.Name(), "detail", res.Detail)
			default:
				o.logger.Info("actuator applied", "actuator", a.Name(), "detail", res.Detail)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := o.store.Write(p); err != nil {
		return fmt.Errorf("transition: commit state: %w", err)
	}

	o.logger.Info("profile switched", "profile", p)
	return nil
}

// Toggle reads the recorded profile and applies the opposite. Anything but
// a recorded powersave, including a missing or unknown record, counts as
// performance and toggles to powersave.
func (o *Orchestrator) Toggle(ctx context.Context) (profile.Profile, error) {
	next := profile.Powersave
	if o.store.Read() == profile.Powersave {
		next = profile.Performance
	}
	return next, o.Apply(ctx, next)
}

// Query returns the recorded profile. Read-only: no side effects and no
// elevated privilege.
func (o *Orchestrator) Query() profile.Profile {
	return o.store.Read()
}
