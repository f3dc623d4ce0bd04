//go:build windows

package procutil

import (
	"os/exec"
	"syscall"
)

// HideWindow configures cmd so the child process does not flash a console
// window. Existing SysProcAttr fields set before this call are preserved.
func HideWindow(cmd *exec.Cmd) {
	if cmd == nil {
		return
	}
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
}
