package silentdeath

import "log/slog"

// GuardConfigSnapshot holds a copy of guardConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type GuardConfigSnapshot struct {
	Strict bool
	Logger *slog.Logger
}

// ApplyOptionsForTesting creates a default guardConfig, applies the given
// options, and returns a GuardConfigSnapshot of the result. This tests the
// option closures directly without constructing a Guard (and therefore
// without touching the process-wide disposition table).
func ApplyOptionsForTesting(opts ...Option) GuardConfigSnapshot {
	cfg := defaultGuardConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return GuardConfigSnapshot{
		Strict: cfg.strict,
		Logger: cfg.log,
	}
}

// CurrentLoggerForTesting exposes the resolved package-level logger so the
// _test package can verify SetLogger behavior.
func CurrentLoggerForTesting() *slog.Logger {
	return currentLogger()
}

// CapturedCountForTesting reports how many signals the guard captured a
// prior disposition for.
func CapturedCountForTesting(g *Guard) int {
	n := 0
	for _, ok := range g.captured {
		if ok {
			n++
		}
	}
	return n
}
