//go:build linux

package deathtest

import (
	"os/exec"
	"syscall"
)

// configureSysProcAttr sets Linux-specific attributes on the child command.
// Pdeathsig delivers SIGKILL to the child when the parent test process dies,
// so an aborted test run cannot leave a death-test child behind.
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
