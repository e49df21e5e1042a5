//go:build windows

package deathtest

import "os"

// terminationSignal never reports a signal on Windows; child termination is
// always expressed as an exit code there.
func terminationSignal(_ *os.ProcessState) (os.Signal, bool) {
	return nil, false
}
