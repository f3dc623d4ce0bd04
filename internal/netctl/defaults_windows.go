//go:build windows

package netctl

// DHCP release/renew, matching the classic LagSwitch behavior. Release drops
// the lease (connectivity gone), renew reacquires it.
const (
	defaultDisableCommand = "ipconfig /release"
	defaultEnableCommand  = "ipconfig /renew"
)
