// Package state persists the last successfully applied profile.
package state

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pwrkit/pwr/internal/profile"
)

// DefaultPath is where the profile record lives on a real system.
const DefaultPath = "/var/lib/pwr_state"

// ErrWriteFailed indicates the profile record could not be committed. The
// hardware-level changes have already taken effect by then, so this must be
// surfaced loudly: future query/toggle calls would otherwise be wrong.
var ErrWriteFailed = errors.New("state: write failed")

// Store reads and writes the single-line profile record. The file is not
// locked: concurrent pwr invocations are last-writer-wins and callers are
// expected to serialize runs externally.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a Store persisting to path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With("component", "state"),
	}
}

// Read returns the persisted profile. A missing, unreadable, or unparsable
// record reads as Performance: a fresh machine has no record yet and that
// is an expected condition, not an error.
func (s *Store) Read() profile.Profile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("state file unreadable, assuming performance",
				"path", s.path,
				"error", err,
			)
		}
		return profile.Performance
	}

	p, err := profile.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		s.logger.Warn("state file holds an unknown profile, assuming performance",
			"path", s.path,
			"error", err,
		)
		return profile.Performance
	}
	return p
}

// Write replaces the record with p, as the profile name followed by a
// newline. The write goes through a temp file and rename so a reader never
// observes a partially written record.
func (s *Store) Write(p profile.Profile) error {
	dir := filepath.Dir(s.path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(s.path)+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer os.Remove(tmpPath) // clean up on error

	if _, err := f.WriteString(string(p) + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	s.logger.Debug("state committed", "path", s.path, "profile", p)
	return nil
}
