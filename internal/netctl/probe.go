package netctl

import (
	"log/slog"
	"net"
)

// Probe reports whether the host currently looks connected: at least one
// non-loopback interface that is up and has an address. The baseline
// "assume connected" is only used when the query itself fails, so a run
// started while the network is already cut begins from reality instead of
// an optimistic guess.
func Probe() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		slog.Warn("[netctl] connectivity probe failed, assuming connected", "error", err)
		return true
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		return true
	}
	return false
}
