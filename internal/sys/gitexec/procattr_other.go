//go:build !unix && !windows

package gitexec

import "os/exec"

func setupProcAttr(cmd *exec.Cmd) {}
