//go:build !linux

package probe

import "net"

// WirelessInterfaceName falls back to the portable interface list on
// non-Linux systems. The name heuristic is Linux-specific, so this mostly
// reports "none found", which actuators treat as a skip.
func (p *SystemProber) WirelessInterfaceName() (string, bool) {
	ifaces, err := net.Interfaces()
	if err != nil {
		p.logger.Warn("wireless probe: listing interfaces failed", "error", err)
		return "", false
	}

	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return firstWireless(names)
}
