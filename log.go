package silentdeath

import (
	"log/slog"
	"sync/atomic"
)

// logger is the package-level logger, stored as an atomic pointer so reads
// and writes are data-race-free. Named "logger" instead of "log" to avoid
// shadowing the stdlib "log" package. A nil value means no custom logger has
// been set and currentLogger falls back to a cached default derived from
// slog.Default().
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches the slog.Default()-derived logger so currentLogger
// does not allocate on every call. If slog.SetDefault is called after the
// first use, the cache keeps the old logger; call SetLogger(nil) to clear
// the cache and pick up the change.
var defaultLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the package-level logger used for strict-check
// warnings. The provided logger should already carry any desired attributes;
// silentdeath adds none of its own on top.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// SetLogger is safe to call concurrently with guard construction and
// restore; both pointers are atomic. For a strict happens-before guarantee,
// call it before the tests that use the library run (e.g. in TestMain before
// m.Run).
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}

// currentLogger returns the package-level logger, deriving and caching the
// default when no custom logger is set. Never returns nil.
func currentLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := newDefaultLogger()
	// CompareAndSwap so a concurrently cached value is not overwritten; if
	// another goroutine won, use theirs.
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	// A concurrent SetLogger cleared the cache between the CAS and the
	// re-load; the locally created logger is still valid.
	return l
}

// newDefaultLogger derives the default logger with the component attribute.
func newDefaultLogger() *slog.Logger {
	return slog.Default().With("component", "silentdeath")
}
