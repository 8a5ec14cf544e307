package actuator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pwrkit/pwr/internal/probe"
	"github.com/pwrkit/pwr/internal/profile"
	"github.com/pwrkit/pwr/internal/runner"
)

// GPU selects the discrete or integrated GPU via the prime-select tool.
// prime-select usually needs a follow-up reboot to take effect, so a failed
// invocation is logged and ignored rather than blocking the transition.
type GPU struct {
	cfg    Config
	probe  probe.Prober
	runner runner.Runner
	logger *slog.Logger
}

// NewGPU returns the GPU-selection actuator.
func NewGPU(cfg Config, prober probe.Prober, run runner.Runner, logger *slog.Logger) *GPU {
	return &GPU{
		cfg:    cfg,
		probe:  prober,
		runner: run,
		logger: logger.With("component", "gpu"),
	}
}

func (a *GPU) Name() string { return "gpu-select" }

// Apply invokes prime-select with the profile's vendor. Skipped entirely
// when the tool is not installed.
func (a *GPU) Apply(ctx context.Context, p profile.Profile) (Result, error) {
	if !a.probe.ExecutableAvailable(a.cfg.PrimeSelectPath) {
		return skipped("prime-select not installed"), nil
	}

	vendor := p.GPUVendor()
	res, err := a.runner.Run(ctx, a.cfg.PrimeSelectPath, vendor)
	if err != nil {
		return failed(err.Error()), err
	}
	if !res.Ok() {
		a.logger.Warn("gpu switch failed, continuing",
			"vendor", vendor,
			"exit_code", res.ExitCode,
			"output", res.Output,
		)
		return failed(fmt.Sprintf("prime-select exited %d", res.ExitCode)), nil
	}

	return applied("gpu vendor " + vendor), nil
}
