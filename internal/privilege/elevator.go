// Package privilege provides scoped elevation of the effective user
// identity for hardware-mutating actions.
package privilege

import "errors"

// ErrElevationFailed indicates the process could not raise its effective
// identity to root. No actuator may run without it.
var ErrElevationFailed = errors.New("privilege: elevation failed")

// Elevator runs an action with the effective identity raised to the
// administrative user and restores the caller identity afterwards.
type Elevator interface {
	// WithElevated raises privileges, runs fn, and unconditionally restores
	// the original identity, even when fn returns an error or panics.
	WithElevated(fn func() error) error
}
