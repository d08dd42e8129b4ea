//go:build windows

package gitexec

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// setupProcAttr keeps git from flashing a console window when the tool runs
// as a GUI-subsystem binary.
func setupProcAttr(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
	cmd.SysProcAttr.CreationFlags |= windows.CREATE_NO_WINDOW
}
