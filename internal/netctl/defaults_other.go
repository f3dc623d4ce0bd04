//go:build !windows && !linux && !darwin

package netctl

// No sensible default on this platform; overrides are required.
const (
	defaultDisableCommand = ""
	defaultEnableCommand  = ""
)
