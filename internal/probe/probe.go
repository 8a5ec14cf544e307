// Package probe answers runtime capability questions: whether an external
// control executable is present and whether the machine has a wireless
// interface. Capabilities are recomputed on every call, never cached.
package probe

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// wirelessPrefix is the interface name prefix udev assigns to WLAN devices.
// Matching by prefix is a heuristic: naming conventions vary across drivers
// and distributions, so a miss means "skip", never an error.
const wirelessPrefix = "wl"

// Prober reports which external control interfaces exist on this machine.
type Prober interface {
	// ExecutableAvailable reports whether a runnable regular file exists
	// at path.
	ExecutableAvailable(path string) bool

	// WirelessInterfaceName returns the name of the first wireless network
	// interface, or false if none was found.
	WirelessInterfaceName() (string, bool)
}

// SystemProber implements Prober against the live system.
type SystemProber struct {
	logger *slog.Logger
}

// NewSystemProber returns a Prober backed by the OS.
func NewSystemProber(logger *slog.Logger) *SystemProber {
	return &SystemProber{logger: logger.With("component", "probe")}
}

// ExecutableAvailable reports whether path is a regular file the current
// user may execute.
func (p *SystemProber) ExecutableAvailable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

// firstWireless returns the first name carrying the wireless prefix.
func firstWireless(names []string) (string, bool) {
	for _, name := range names {
		if strings.HasPrefix(name, wirelessPrefix) {
			return name, true
		}
	}
	return "", false
}
