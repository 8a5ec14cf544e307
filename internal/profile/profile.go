// Package profile defines the two mutually exclusive operating profiles
// pwr switches between and the per-knob values each profile calls for.
package profile

import "fmt"

// Profile identifies one of the two operating profiles.
type Profile string

const (
	// Performance favors raw speed: performance governor, discrete GPU,
	// wifi power management off.
	Performance Profile = "performance"

	// Powersave favors battery life: powersave governor, integrated GPU,
	// wifi power management on.
	Powersave Profile = "powersave"
)

// Parse converts s into a Profile. Only the two canonical names are valid;
// anything else is an error so unknown values never leak into the state file.
func Parse(s string) (Profile, error) {
	switch Profile(s) {
	case Performance, Powersave:
		return Profile(s), nil
	}
	return "", fmt.Errorf("profile: unknown profile %q", s)
}

// Opposite returns the other profile.
func (p Profile) Opposite() Profile {
	if p == Powersave {
		return Performance
	}
	return Powersave
}

// Governor returns the cpufreq scaling governor for the profile. The kernel
// governor names happen to match the profile names.
func (p Profile) Governor() string {
	return string(p)
}

// GPUVendor returns the prime-select vendor argument for the profile.
func (p Profile) GPUVendor() string {
	if p == Performance {
		return "nvidia"
	}
	return "intel"
}

// WifiPower returns the iwconfig power argument: management is turned off
// in performance mode and on in powersave mode.
func (p Profile) WifiPower() string {
	if p == Performance {
		return "off"
	}
	return "on"
}

func (p Profile) String() string {
	return string(p)
}
