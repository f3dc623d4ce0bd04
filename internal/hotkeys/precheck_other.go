//go:build !windows && !linux && !darwin

package hotkeys

import "fmt"

func hookPrecheck() error {
	return fmt.Errorf("%w: unsupported platform", ErrHookUnavailable)
}
