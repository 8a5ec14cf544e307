package cmd

import (
	"log/slog"

	"github.com/pwrkit/pwr/internal/actuator"
	"github.com/pwrkit/pwr/internal/privilege"
	"github.com/pwrkit/pwr/internal/probe"
	"github.com/pwrkit/pwr/internal/runner"
	"github.com/pwrkit/pwr/internal/state"
	"github.com/pwrkit/pwr/internal/transition"
)

// statePath is the profile record location. Variable so tests can point it
// at a temp directory.
var statePath = state.DefaultPath

func newStore(logger *slog.Logger) *state.Store {
	return state.NewStore(statePath, logger)
}

// newOrchestrator wires the probes, runner, actuators, elevator, and store
// into a transition orchestrator. The actuator order is fixed: governor
// first, display-manager restart last.
func newOrchestrator(logger *slog.Logger) *transition.Orchestrator {
	cfg := actuator.Config{NoRestart: noRestart}
	cfg.ApplyDefaults()

	prober := probe.NewSystemProber(logger)
	run := runner.NewExecRunner(logger)

	acts := []actuator.Actuator{
		actuator.NewGovernor(cfg, logger),
		actuator.NewGPU(cfg, prober, run, logger),
		actuator.NewWireless(cfg, prober, run, logger),
		actuator.NewDisplayManager(cfg, prober, run, logger),
	}

	return transition.New(
		privilege.NewSeteuidElevator(logger),
		acts,
		newStore(logger),
		logger,
	)
}
