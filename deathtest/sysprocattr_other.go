//go:build !linux

package deathtest

import "os/exec"

// configureSysProcAttr is a no-op outside Linux.
// Pdeathsig (parent-death signal) is a Linux-only kernel feature.
func configureSysProcAttr(_ *exec.Cmd) {}
