package actuator

// Default locations of the kernel interface and external tools, matching
// where distributions install them.
const (
	// DefaultGovernorPattern matches one scaling_governor control file per
	// logical CPU.
	DefaultGovernorPattern = "/sys/devices/system/cpu/cpu*/cpufreq/scaling_governor"

	// DefaultPrimeSelectPath is the NVIDIA PRIME GPU-switch tool.
	DefaultPrimeSelectPath = "/usr/bin/prime-select"

	// DefaultIwconfigPath is the wireless configuration tool.
	DefaultIwconfigPath = "/sbin/iwconfig"

	// DefaultSystemctlPath is the service manager control tool.
	DefaultSystemctlPath = "/bin/systemctl"

	// DefaultDisplayManagerUnit is the service restarted after a GPU switch.
	DefaultDisplayManagerUnit = "display-manager"
)

// Config holds the tool locations and the restart gate for the actuators.
// Values come from compiled defaults and CLI flags only; there is no
// configuration file.
type Config struct {
	// GovernorPattern is the glob matching the per-CPU governor files.
	GovernorPattern string

	// PrimeSelectPath is the GPU vendor-switch tool.
	PrimeSelectPath string

	// IwconfigPath is the wireless configuration tool.
	IwconfigPath string

	// SystemctlPath is the service manager tool.
	SystemctlPath string

	// DisplayManagerUnit is the service unit to restart.
	DisplayManagerUnit string

	// NoRestart suppresses the display-manager restart actuator.
	NoRestart bool
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.GovernorPattern == "" {
		c.GovernorPattern = DefaultGovernorPattern
	}
	if c.PrimeSelectPath == "" {
		c.PrimeSelectPath = DefaultPrimeSelectPath
	}
	if c.IwconfigPath == "" {
		c.IwconfigPath = DefaultIwconfigPath
	}
	if c.SystemctlPath == "" {
		c.SystemctlPath = DefaultSystemctlPath
	}
	if c.DisplayManagerUnit == "" {
		c.DisplayManagerUnit = DefaultDisplayManagerUnit
	}
}
