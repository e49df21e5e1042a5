package silentdeath

import "log/slog"

// Option configures a Guard during construction via New (or Scoped).
//
// WithLogger panics on nil input. The panic is intentional: option values
// are wired at test-setup time, so an invalid value indicates a programmer
// error rather than a runtime condition, and failing fast beats silently
// discarding warnings.
type Option func(*guardConfig)

// guardConfig collects the construction-time settings for a Guard.
type guardConfig struct {
	strict bool
	log    *slog.Logger // nil means the package-level logger, resolved per warning
}

// defaultGuardConfig returns a guardConfig populated with all default
// values. Both New and the test seam use this to avoid duplicating the
// defaults.
func defaultGuardConfig() guardConfig {
	return guardConfig{}
}

// WithStrictChecks makes the Guard log every failed disposition query,
// install, or restore at Warn level. The default preserves the original
// contract: failures of the underlying kernel calls are silently ignored,
// since the fixed signal set is always valid and a failure indicates a
// constrained environment, not a recoverable condition. No error is ever
// surfaced through the public interface in either mode.
func WithStrictChecks() Option {
	return func(c *guardConfig) {
		c.strict = true
	}
}

// WithLogger sets the logger this Guard uses for strict-check warnings,
// overriding the package-level logger configured via SetLogger.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("silentdeath: logger must not be nil")
	}
	return func(c *guardConfig) {
		c.log = l
	}
}
