package silentdeath

import (
	"log/slog"
	"sync/atomic"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/giantswarm/silentdeath/internal/disposition"
)

// Guard holds the suppression window open: constructing one replaces the
// kernel disposition of each suppressed signal with the default action,
// capturing the prior disposition; Restore reinstalls the captured
// dispositions. One saved record per signal, in an array parallel to the
// signal set, captured at construction and never mutated until Restore
// consumes it.
//
// A Guard must not be copied: a copy would duplicate restoration
// responsibility (go vet's copylocks check rejects copies via the atomic
// field). Guards are for single-threaded, strictly nested use; two guards
// alive on separate goroutines race on the process-wide disposition table.
//
// A Guard that is never restored because the process died mid-test is the
// expected death-test outcome, not a leak: disposition state does not
// outlive the process.
type Guard struct {
	prev     [len(suppressedSignals)]disposition.Record
	captured [len(suppressedSignals)]bool
	restored atomic.Bool
	strict   bool
	log      *slog.Logger
}

// New constructs a Guard, installing the default disposition for each
// suppressed signal in set order and capturing the prior disposition of
// each. Capture and replacement happen atomically per signal.
//
// Kernel-call failures are ignored (the signal is simply left uncaptured
// and skipped on Restore) unless WithStrictChecks is given, in which case
// each failure is logged at Warn. New itself never fails.
func New(opts ...Option) *Guard {
	cfg := defaultGuardConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Guard{strict: cfg.strict, log: cfg.log}
	for i, sig := range suppressedSignals {
		prev, err := disposition.InstallDefault(sig)
		if err != nil {
			g.warn("install default disposition failed", sig, err)
			continue
		}
		g.prev[i] = prev
		g.captured[i] = true
	}
	return g
}

// Restore reinstalls the dispositions captured at construction, in the same
// set order, unconditionally overwriting whatever is active now. Signals
// whose capture failed are skipped. A second Restore on the same Guard is a
// no-op, so deferring it alongside an explicit call is safe.
func (g *Guard) Restore() {
	if !g.restored.CompareAndSwap(false, true) {
		return
	}
	for i, sig := range suppressedSignals {
		if !g.captured[i] {
			continue
		}
		if err := disposition.Restore(sig, g.prev[i]); err != nil {
			g.warn("restore disposition failed", sig, err)
		}
	}
}

// warn logs a kernel-call failure when strict checks are enabled.
func (g *Guard) warn(msg string, sig unix.Signal, err error) {
	if !g.strict {
		return
	}
	log := g.log
	if log == nil {
		log = currentLogger()
	}
	log.Warn(msg, "signal", unix.SignalName(sig), "error", err)
}

// Scoped constructs a Guard whose Restore is registered with t.Cleanup, so
// the suppression window closes when the test (and its subtests) finish.
// For test suites, embedding Suite removes even this one line per test.
func Scoped(t testing.TB, opts ...Option) *Guard {
	t.Helper()
	g := New(opts...)
	t.Cleanup(g.Restore)
	return g
}

// Supported reports whether real suppression is available on this platform.
// Where it is not (anything other than Linux on a non-MIPS architecture),
// guards still construct and restore but change no dispositions.
func Supported() bool {
	return disposition.Supported()
}
