package actuator

import (
	"context"
	"io"
	"log/slog"

	"github.com/pwrkit/pwr/internal/runner"
)

// --- Mock Prober ---

type mockProber struct {
	executables map[string]bool
	iface       string
	ifaceFound  bool
}

func (m *mockProber) ExecutableAvailable(path string) bool {
	return m.executables[path]
}

func (m *mockProber) WirelessInterfaceName() (string, bool) {
	return m.iface, m.ifaceFound
}

// --- Mock Runner ---

type runCall struct {
	path string
	args []string
}

type mockRunner struct {
	result runner.Result
	err    error
	calls  []runCall
}

func (m *mockRunner) Run(_ context.Context, path string, args ...string) (runner.Result, error) {
	m.calls = append(m.calls, runCall{path: path, args: args})
	return m.result, m.err
}

// --- Test helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}
