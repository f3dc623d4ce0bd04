//go:build linux

package netctl

// NetworkManager owns connectivity on mainstream desktop distributions.
// Hosts without nmcli need a command override in settings.yaml.
const (
	defaultDisableCommand = "nmcli networking off"
	defaultEnableCommand  = "nmcli networking on"
)
