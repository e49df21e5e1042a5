//go:build unix

package deathtest

import (
	"os"
	"syscall"
)

// terminationSignal reports the signal that killed the child, if any.
func terminationSignal(state *os.ProcessState) (os.Signal, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return nil, false
	}
	return ws.Signal(), true
}
