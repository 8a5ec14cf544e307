package privilege

import (
	"fmt"
	"log/slog"
	"syscall"

	"golang.org/x/sys/unix"
)

// SeteuidElevator implements Elevator by switching the process effective
// UID to root and back. It relies on the pwr binary being installed setuid
// root, so the saved UID allows regaining root for the elevated scope.
type SeteuidElevator struct {
	logger *slog.Logger
}

// NewSeteuidElevator returns an Elevator backed by seteuid.
func NewSeteuidElevator(logger *slog.Logger) *SeteuidElevator {
	return &SeteuidElevator{logger: logger.With("component", "privilege")}
}

// WithElevated raises the effective UID to root for the duration of fn.
// Restoration runs in a defer so an error or panic inside fn cannot leave
// the process elevated.
func (e *SeteuidElevator) WithElevated(fn func() error) (err error) {
	caller := unix.Geteuid()

	if serr := syscall.Seteuid(0); serr != nil {
		return fmt.Errorf("%w: seteuid(0): %v", ErrElevationFailed, serr)
	}
	e.logger.Debug("elevated", "caller_euid", caller)

	defer func() {
		if rerr := syscall.Seteuid(caller); rerr != nil {
			if err == nil {
				err = fmt.Errorf("privilege: restore euid %d: %w", caller, rerr)
				return
			}
			// fn already failed; keep its error and log the restore failure.
			e.logger.Error("failed to restore caller identity",
				"caller_euid", caller,
				"error", rerr,
			)
		}
	}()

	return fn()
}
