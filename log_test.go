package silentdeath_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/giantswarm/silentdeath"
)

// Logger tests mutate package-level state and restore it afterwards, so they
// do not run in parallel with each other.

func TestSetLoggerReplacesPackageLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	silentdeath.SetLogger(custom)
	t.Cleanup(func() { silentdeath.SetLogger(nil) })

	if got := silentdeath.CurrentLoggerForTesting(); got != custom {
		t.Error("package logger is not the logger passed to SetLogger")
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	silentdeath.SetLogger(custom)
	silentdeath.SetLogger(nil)

	got := silentdeath.CurrentLoggerForTesting()
	if got == nil {
		t.Fatal("package logger is nil after SetLogger(nil)")
	}
	if got == custom {
		t.Error("SetLogger(nil) did not discard the custom logger")
	}
}

func TestDefaultLoggerIsCached(t *testing.T) {
	silentdeath.SetLogger(nil)

	first := silentdeath.CurrentLoggerForTesting()
	second := silentdeath.CurrentLoggerForTesting()
	if first != second {
		t.Error("consecutive default-logger lookups returned different loggers")
	}
}
