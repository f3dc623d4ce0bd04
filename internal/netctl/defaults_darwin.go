//go:build darwin

package netctl

// Toggles the Wi-Fi service. Wired-only machines need a command override in
// settings.yaml naming their service ("Ethernet" etc).
const (
	defaultDisableCommand = `networksetup -setnetworkserviceenabled Wi-Fi off`
	defaultEnableCommand  = `networksetup -setnetworkserviceenabled Wi-Fi on`
)
