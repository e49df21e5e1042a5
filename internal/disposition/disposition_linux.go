//go:build linux && !mips && !mipsle && !mips64 && !mips64le

package disposition

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Record is an exact image of the kernel struct sigaction consumed by
// rt_sigaction(2) on the generic Linux ABI. It is comparable, so a restored
// disposition can be checked for byte-for-byte equality with the captured
// one. Callers must not interpret or modify the fields of a captured Record;
// the only supported uses are holding it and passing it back to Restore.
type Record struct {
	Handler  uintptr
	Flags    uintptr
	Restorer uintptr
	Mask     uint64
}

// Kernel handler sentinels from <asm-generic/signal-defs.h>.
const (
	// HandlerDefault is SIG_DFL: the kernel's default action for the signal.
	HandlerDefault uintptr = 0

	// HandlerIgnore is SIG_IGN: the signal is discarded on delivery.
	HandlerIgnore uintptr = 1
)

// sigsetSize is the byte size of the kernel sigset_t expected by
// rt_sigaction: _NSIG/8 with _NSIG=64 on every Linux architecture except
// MIPS, which this file excludes. Passing any other size yields EINVAL.
const sigsetSize = 8

// Supported reports that direct disposition control is available.
func Supported() bool {
	return true
}

// IsDefault reports whether the record describes the kernel's default action.
func (r Record) IsDefault() bool {
	return r.Handler == HandlerDefault
}

// rtSigaction invokes rt_sigaction(2) directly instead of going through
// os/signal. Bypassing the runtime is the point: the runtime's crash handler
// must genuinely be replaced at the kernel level so that a fatal signal
// terminates the process without any handler running. Either pointer may be
// nil (query-only or install-only).
func rtSigaction(sig unix.Signal, newRec, oldRec *Record) error {
	_, _, errno := unix.Syscall6(unix.SYS_RT_SIGACTION,
		uintptr(sig),
		uintptr(unsafe.Pointer(newRec)),
		uintptr(unsafe.Pointer(oldRec)),
		sigsetSize, 0, 0)
	if errno != 0 {
		return fmt.Errorf("rt_sigaction %s: %w", unix.SignalName(sig), errno)
	}
	return nil
}

// Get returns the current disposition of sig without modifying it.
func Get(sig unix.Signal) (Record, error) {
	var cur Record
	if err := rtSigaction(sig, nil, &cur); err != nil {
		return Record{}, fmt.Errorf("query disposition: %w", err)
	}
	return cur, nil
}

// Install replaces the disposition of sig with rec, returning the
// disposition that was in effect immediately prior. Capture and replacement
// happen in a single syscall, so no window exists in which a concurrent
// change could be lost between the two.
func Install(sig unix.Signal, rec Record) (Record, error) {
	var prev Record
	if err := rtSigaction(sig, &rec, &prev); err != nil {
		return Record{}, fmt.Errorf("install disposition: %w", err)
	}
	return prev, nil
}

// InstallDefault replaces the disposition of sig with the kernel default
// action, returning the prior disposition.
func InstallDefault(sig unix.Signal) (Record, error) {
	return Install(sig, Record{Handler: HandlerDefault})
}

// Restore reinstalls a previously captured record, discarding whatever
// disposition is currently active. It is an unconditional overwrite, not a
// merge.
func Restore(sig unix.Signal, rec Record) error {
	if err := rtSigaction(sig, &rec, nil); err != nil {
		return fmt.Errorf("restore disposition: %w", err)
	}
	return nil
}
