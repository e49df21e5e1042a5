// Package silentdeath suppresses crash-reporting noise during death tests.
//
// A death test deliberately terminates the process with a fatal signal to
// verify that termination happens. Without suppression, the environment's
// crash handling (the Go runtime's fatal-signal handler, or any crash
// reporter installed before the test binary started) fires on the expected
// death: it prints stack traces, pollutes logs, and counts the intended
// death in stability telemetry. silentdeath installs the kernel's default
// disposition for a fixed set of crash-indicating signals (SIGABRT, SIGBUS,
// SIGSEGV, and SIGSYS) for the duration of a test, then restores whatever
// dispositions were previously installed, byte-for-byte.
//
// # Test Suites
//
// Inherit from Suite instead of declaring a per-test guard. SetupTest and
// TearDownTest manage the suppression window automatically:
//
//	import (
//	    "testing"
//
//	    "github.com/giantswarm/silentdeath"
//	    "github.com/stretchr/testify/suite"
//	)
//
//	type FooDeathTest struct {
//	    silentdeath.Suite
//	}
//
//	func TestFooDeathTest(t *testing.T) {
//	    suite.Run(t, new(FooDeathTest))
//	}
//
// A suite that needs its own setup or teardown must still invoke the
// embedded hooks:
//
//	func (s *FooDeathTest) SetupTest() {
//	    s.Suite.SetupTest() // open the suppression window first
//	    // own setup...
//	}
//
// # Individual Tests
//
// When changing a shared test suite's base adds more complexity than it
// removes, scope suppression to the single death test instead:
//
//	func TestAssertAborts(t *testing.T) {
//	    silentdeath.Scoped(t)
//	    // death test body...
//	}
//
// Or manage the window manually with a Guard:
//
//	g := silentdeath.New()
//	defer g.Restore()
//
// # Process Model
//
// Signal dispositions are process-wide state. Exactly one guard may be
// active at a time (strict nesting from a single test-execution goroutine
// also composes correctly); running two suppressing tests concurrently is a
// caller error that this package does not detect. A test body that dies
// mid-suppression never reaches Restore; that is the intended outcome of a
// death test, and the kernel discards the process's disposition table on
// exit, so nothing leaks.
//
// Suppression requires direct kernel disposition control and is only real on
// Linux (non-MIPS). Elsewhere the guard is a structural no-op; Supported
// reports which mode is in effect. See the deathtest subpackage for running
// a death body in a re-executed child process.
package silentdeath
