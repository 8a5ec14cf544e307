// Package runner invokes external control tools as bounded child processes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// ErrLaunchFailed indicates a child process could not be started at all
// (missing binary, permission, resource exhaustion). A process that starts
// and exits non-zero is reported through Result instead.
var ErrLaunchFailed = errors.New("runner: launch failed")

// DefaultTimeout bounds a single child process. A hung external tool must
// not hang the whole invocation.
const DefaultTimeout = 30 * time.Second

// waitDelayAfterKill is the grace period for a process to exit after
// context cancellation before it is forcibly killed.
const waitDelayAfterKill = 500 * time.Millisecond

// maxOutputBytes caps captured tool output so a noisy tool cannot balloon
// memory.
const maxOutputBytes = 64 << 10

// Result describes one completed child process.
type Result struct {
	// ExitCode is the process exit status; -1 if it was killed (timeout
	// or signal).
	ExitCode int

	// Duration is the wall-clock time the process ran for.
	Duration time.Duration

	// Output is the combined stdout and stderr, truncated at maxOutputBytes.
	Output string
}

// Ok reports whether the process ran to completion with exit status zero.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// Runner runs an external tool and waits for it to finish. Execution is
// strictly sequential: the caller blocks until the child exits.
type Runner interface {
	Run(ctx context.Context, path string, args ...string) (Result, error)
}

// ExecRunner is the os/exec-backed Runner used in production.
type ExecRunner struct {
	// Timeout bounds each child process. Zero means DefaultTimeout.
	Timeout time.Duration

	logger *slog.Logger
}

// NewExecRunner returns an ExecRunner with the default timeout.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	return &ExecRunner{
		Timeout: DefaultTimeout,
		logger:  logger.With("component", "runner"),
	}
}

// Run starts path with args and waits for it to exit. A non-zero exit
// status is not an error: it is reported in the Result for the caller's
// policy to judge.
func (r *ExecRunner) Run(ctx context.Context, path string, args ...string) (Result, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, path, args...)
	cmd.WaitDelay = waitDelayAfterKill

	out := &limitedWriter{max: maxOutputBytes}
	cmd.Stdout = out
	cmd.Stderr = out

	start := time.Now()
	runErr := cmd.Run()
	res := Result{
		Duration: time.Since(start),
		Output:   out.String(),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.logger.Debug("tool exited non-zero",
				"path", path,
				"exit_code", res.ExitCode,
				"duration", res.Duration,
			)
			return res, nil
		}
		res.ExitCode = -1
		return res, fmt.Errorf("%w: %s: %v", ErrLaunchFailed, path, runErr)
	}

	r.logger.Debug("tool completed",
		"path", path,
		"duration", res.Duration,
	)
	return res, nil
}

// limitedWriter captures up to max bytes and silently discards the rest,
// always reporting the full write so the child process never stalls.
type limitedWriter struct {
	buf []byte
	max int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if room := w.max - len(w.buf); room > 0 {
		chunk := p
		if len(chunk) > room {
			chunk = chunk[:room]
		}
		w.buf = append(w.buf, chunk...)
	}
	return len(p), nil
}

func (w *limitedWriter) String() string {
	return string(w.buf)
}
