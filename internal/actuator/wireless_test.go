package actuator

import (
	"context"
	"reflect"
	"testing"

	"github.com/pwrkit/pwr/internal/profile"
	"github.com/pwrkit/pwr/internal/runner"
)

func TestWireless_SkipsWhenToolAbsent(t *testing.T) {
	prober := &mockProber{executables: map[string]bool{}, iface: "wlp3s0", ifaceFound: true}
	run := &mockRunner{}
	a := NewWireless(testConfig(), prober, run, testLogger())

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

func TestWireless_SkipsWithoutInterface(t *testing.T) {
	prober := &mockProber{executables: map[string]bool{DefaultIwconfigPath: true}}
	run := &mockRunner{}
	a := NewWireless(testConfig(), prober, run, testLogger())

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

func TestWireless_TogglesPowerPerProfile(t *testing.T) {
	tests := []struct {
		profile profile.Profile
		state   string
	}{
		{profile.Performance, "off"},
		{profile.Powersave, "on"},
	}

	for _, tt := range tests {
		prober := &mockProber{
			executables: map[string]bool{DefaultIwconfigPath: true},
			iface:       "wlp3s0",
			ifaceFound:  true,
		}
		run := &mockRunner{}
		a := NewWireless(testConfig(), prober, run, testLogger())

		res, err := a.Apply(context.Background(), tt.profile)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.profile, err)
		}
		if res.Outcome != Applied {
			t.Errorf("%s: outcome = %s, want applied", tt.profile, res.Outcome)
		}
		if len(run.calls) != 1 {
			t.Fatalf("%s: expected one launch, got %d", tt.profile, len(run.calls))
		}
		want := []string{"wlp3s0", "power", tt.state}
		if !reflect.DeepEqual(run.calls[0].args, want) {
			t.Errorf("%s: args = %v, want %v", tt.profile, run.calls[0].args, want)
		}
	}
}

func TestWireless_NonZeroExitIsNonFatal(t *testing.T) {
	prober := &mockProber{
		executables: map[string]bool{DefaultIwconfigPath: true},
		iface:       "wlan0",
		ifaceFound:  true,
	}
	run := &mockRunner{result: runner.Result{ExitCode: 250}}
	a := NewWireless(testConfig(), prober, run, testLogger())

	res, err := a.Apply(context.Background(), profile.Performance)
	if err != nil {
		t.Fatalf("tool failure must not abort the transition: %v", err)
	}
	if res.Outcome != Failed {
		t.Errorf("outcome = %s, want failed", res.Outcome)
	}
}
