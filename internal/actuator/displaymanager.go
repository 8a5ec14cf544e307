package actuator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pwrkit/pwr/internal/probe"
	"github.com/pwrkit/pwr/internal/profile"
	"github.com/pwrkit/pwr/internal/runner"
)

// DisplayManager restarts the display-manager service so the new GPU
// selection takes effect. The restart drops the graphical session, which is
// why it runs last in a transition and is the only actuator gated by an
// explicit user flag in addition to capability.
type DisplayManager struct {
	cfg    Config
	probe  probe.Prober
	runner runner.Runner
	logger *slog.Logger
}

// NewDisplayManager returns the display-manager restart actuator.
func NewDisplayManager(cfg Config, prober probe.Prober, run runner.Runner, logger *slog.Logger) *DisplayManager {
	return &DisplayManager{
		cfg:    cfg,
		probe:  prober,
		runner: run,
		logger: logger.With("component", "displaymanager"),
	}
}

func (a *DisplayManager) Name() string { return "display-manager" }

// Apply restarts the display-manager unit via systemctl. Skipped when
// --norestart was given or systemctl is not installed; a failed restart is
// logged and ignored since the other settings are already committed.
func (a *DisplayManager) Apply(ctx context.Context, _ profile.Profile) (Result, error) {
	if a.cfg.NoRestart {
		return skipped("suppressed by --norestart"), nil
	}
	if !a.probe.ExecutableAvailable(a.cfg.SystemctlPath) {
		return skipped("systemctl not installed"), nil
	}

	res, err := a.runner.Run(ctx, a.cfg.SystemctlPath, "restart", a.cfg.DisplayManagerUnit)
	if err != nil {
		return failed(err.Error()), err
	}
	if !res.Ok() {
		a.logger.Warn("display manager restart failed, continuing",
			"unit", a.cfg.DisplayManagerUnit,
			"exit_code", res.ExitCode,
			"output", res.Output,
		)
		return failed(fmt.Sprintf("systemctl exited %d", res.ExitCode)), nil
	}

	return applied("restarted " + a.cfg.DisplayManagerUnit), nil
}
