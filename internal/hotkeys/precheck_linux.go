//go:build linux

package hotkeys

import (
	"fmt"
	"os"
)

// The hook attaches through the X record extension. Without a display
// server connection it installs nothing while still reporting success, so
// refuse up front when no display is reachable.
func hookPrecheck() error {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: no display server (DISPLAY and WAYLAND_DISPLAY are unset)", ErrHookUnavailable)
	}
	return nil
}
