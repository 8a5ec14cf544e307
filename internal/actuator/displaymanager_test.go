package actuator

import (
	"context"
	"reflect"
	"testing"

	"github.com/pwrkit/pwr/internal/profile"
	"github.com/pwrkit/pwr/internal/runner"
)

func TestDisplayManager_RestartsUnit(t *testing.T) {
	prober := &mockProber{executables: map[string]bool{DefaultSystemctlPath: true}}
	run := &mockRunner{}
	a := NewDisplayManager(testConfig(), prober, run, testLogger())

	res, err := a.Apply(context.Background(), profile.Performance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Applied {
		t.Errorf("outcome = %s, want applied", res.Outcome)
	}
	if len(run.calls) != 1 {
		t.Fatalf("expected one launch, got %d", len(run.calls))
	}
	want := []string{"restart", "display-manager"}
	if run.calls[0].path != DefaultSystemctlPath || !reflect.DeepEqual(run.calls[0].args, want) {
		t.Errorf("launched %s %v, want %s %v",
			run.calls[0].path, run.calls[0].args, DefaultSystemctlPath, want)
	}
}

func TestDisplayManager_NoRestartSuppressesLaunch(t *testing.T) {
	// The flag wins even when systemctl is present and executable.
	cfg := testConfig()
	cfg.NoRestart = true
	prober := &mockProber{executables: map[string]bool{DefaultSystemctlPath: true}}
	run := &mockRunner{}
	a := NewDisplayManager(cfg, prober, run, testLogger())

	res, err := a.Apply(context.Background(), profile.Powersave)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Skipped {
		t.Errorf("outcome = %s, want skipped", res.Outcome)
	}
	if len(run.calls) != 0 {
		t.Errorf("expected zero process launches, got %d", len(run.calls))
	}
}

func TestDisplayManager_SkipsWhenToolAbsent(t *testing.T) {
	prober := &mockProber{executables: map[string]bool{}}
	run := &mockRunner{}
	a := NewDisplayManager(testConfig(), prober, run, testLogger())

	res, err := a.Apply(context.Background(), profile.Performance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Skipped {
		t.Errorf("outcome = %s, want skipped", res.Outcome)
	}
	if len(run.calls) != 0 {
		t.Errorf("expected zero process launches, got %d", len(run.calls))
	}
}

func TestDisplayManager_FailedRestartIsNonFatal(t *testing.T) {
	prober := &mockProber{executables: map[string]bool{DefaultSystemctlPath: true}}
	run := &mockRunner{result: runner.Result{ExitCode: 5}}
	a := NewDisplayManager(testConfig(), prober, run, testLogger())

	res, err := a.Apply(context.Background(), profile.Performance)
	if err != nil {
		t.Fatalf("restart failure must not abort the transition: %v", err)
	}
	if res.Outcome != Failed {
		t.Errorf("outcome = %s, want failed", res.Outcome)
	}
}
