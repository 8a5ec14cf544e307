package actuator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pwrkit/pwr/internal/probe"
	"github.com/pwrkit/pwr/internal/profile"
	"github.com/pwrkit/pwr/internal/runner"
)

// Wireless toggles wifi power management through iwconfig on the first
// wireless interface found. Interface detection is a name-prefix heuristic,
// so a miss is expected on some hardware: either a missing tool or a
// missing interface makes this a skip.
type Wireless struct {
	cfg    Config
	probe  probe.Prober
	runner runner.Runner
	logger *slog.Logger
}

// NewWireless returns the wireless power actuator.
func NewWireless(cfg Config, prober probe.Prober, run runner.Runner, logger *slog.Logger) *Wireless {
	return &Wireless{
		cfg:    cfg,
		probe:  prober,
		runner: run,
		logger: logger.With("component", "wireless"),
	}
}

func (a *Wireless) Name() string { return "wifi-power" }

// Apply sets the wifi power-saving state for the profile. Invocation
// failures are logged and ignored.
func (a *Wireless) Apply(ctx context.Context, p profile.Profile) (Result, error) {
	if !a.probe.ExecutableAvailable(a.cfg.IwconfigPath) {
		return skipped("iwconfig not installed"), nil
	}

	iface, ok := a.probe.WirelessInterfaceName()
	if !ok {
		return skipped("no wireless interface found"), nil
	}

	state := p.WifiPower()
	res, err := a.runner.Run(ctx, a.cfg.IwconfigPath, iface, "power", state)
	if err != nil {
		return failed(err.Error()), err
	}
	if !res.Ok() {
		a.logger.Warn("wifi power toggle failed, continuing",
			"interface", iface,
			"state", state,
			"exit_code", res.ExitCode,
			"output", res.Output,
		)
		return failed(fmt.Sprintf("iwconfig exited %d", res.ExitCode)), nil
	}

	return applied(fmt.Sprintf("power %s on %s", state, iface)), nil
}
