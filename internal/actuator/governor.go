package actuator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pwrkit/pwr/internal/profile"
)

// ErrGovernorWrite indicates a governor control file was found but could
// not be written. This is the core performance knob, so a partial apply is
// fatal to the whole transition.
var ErrGovernorWrite = errors.New("actuator: governor write failed")

// Governor writes the profile's scaling governor into every per-CPU
// cpufreq control file.
type Governor struct {
	pattern string
	logger  *slog.Logger
}

// NewGovernor returns the CPU governor actuator.
func NewGovernor(cfg Config, logger *slog.Logger) *Governor {
	return &Governor{
		pattern: cfg.GovernorPattern,
		logger:  logger.With("component", "governor"),
	}
}

func (g *Governor) Name() string { return "cpu-governor" }

// Apply globs the governor control files and writes the governor name into
// each. Zero matches means the kernel interface is absent and is a
// legitimate skip; a found-but-unwritable file is a hard failure because it
// signals a broken or unsupported kernel interface.
func (g *Governor) Apply(_ context.Context, p profile.Profile) (Result, error) {
	paths, err := filepath.Glob(g.pattern)
	if err != nil {
		return failed(err.Error()), fmt.Errorf("%w: bad pattern %q: %v", ErrGovernorWrite, g.pattern, err)
	}
	if len(paths) == 0 {
		return skipped("no cpufreq governor files matched"), nil
	}

	for _, path := range paths {
		if err := writeGovernor(path, p.Governor()); err != nil {
			return failed(path), fmt.Errorf("%w: %s: %v", ErrGovernorWrite, path, err)
		}
	}

	g.logger.Debug("governor written", "governor", p.Governor(), "cpus", len(paths))
	return applied(fmt.Sprintf("%s on %d cpus", p.Governor(), len(paths))), nil
}

// writeGovernor writes one governor name into a sysfs control file. The
// file already exists, so it is opened write-only without create/truncate
// semantics that sysfs does not support.
func writeGovernor(path, governor string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(governor + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
