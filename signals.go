package silentdeath

import (
	"os"

	"golang.org/x/sys/unix"
)

// suppressedSignals is the fixed set of crash-indicating signals a Guard
// overrides, in capture order. The set is part of the contract: exactly
// these four, never configurable, identical across all guard instances.
// Capture and restore walk this array in index order so the saved-record
// array stays parallel to it.
var suppressedSignals = [...]unix.Signal{
	unix.SIGABRT,
	unix.SIGBUS,
	unix.SIGSEGV,
	unix.SIGSYS,
}

// SuppressedSignals returns the fixed set of signals a Guard suppresses, in
// the order they are captured and restored. The returned slice is a copy;
// mutating it has no effect on the package.
func SuppressedSignals() []os.Signal {
	out := make([]os.Signal, 0, len(suppressedSignals))
	for _, sig := range suppressedSignals {
		out = append(out, sig)
	}
	return out
}
