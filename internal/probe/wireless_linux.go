//go:build linux

package probe

import "github.com/vishvananda/netlink"

// WirelessInterfaceName enumerates links via netlink and returns the first
// one named like a wireless device.
func (p *SystemProber) WirelessInterfaceName() (string, bool) {
	links, err := netlink.LinkList()
	if err != nil {
		p.logger.Warn("wireless probe: listing links failed", "error", err)
		return "", false
	}

	names := make([]string, 0, len(links))
	for _, link := range links {
		names = append(names, link.Attrs().Name)
	}
	return firstWireless(names)
}
