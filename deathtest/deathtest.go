package deathtest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"
)

// childEnv marks the re-executed child process. Run sets it; Child reads it.
const childEnv = "SILENTDEATH_DEATH_TEST_CHILD"

// DefaultTimeout bounds how long Run waits for the child to terminate when
// no explicit timeout is configured via WithTimeout. A death-test child is
// expected to die almost immediately; the bound exists so a death body that
// fails to die hangs the test run for seconds, not forever.
const DefaultTimeout = 30 * time.Second

// Result describes how the death-test child terminated.
type Result struct {
	// ExitCode is the child's exit code when it exited normally; -1 when
	// the child was killed by a signal.
	ExitCode int

	// Signaled reports whether the child was terminated by a signal.
	Signaled bool

	// Signal is the terminating signal when Signaled; nil otherwise.
	Signal os.Signal

	// Output is the child's combined stdout and stderr. A suppressed death
	// leaves no crash banner here.
	Output []byte
}

// Option configures a single Run invocation.
//
// WithTimeout panics on non-positive input; timeouts are compile-time
// constants in practice, so an invalid value is a programmer error.
type Option func(*runConfig)

type runConfig struct {
	timeout time.Duration
}

// WithTimeout overrides DefaultTimeout for this Run.
// Panics if d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("deathtest: timeout must be greater than 0, got %v", d))
	}
	return func(c *runConfig) {
		c.timeout = d
	}
}

// Child reports whether this process is a re-executed death-test child.
// Every test that calls Run must gate its death body on Child.
func Child() bool {
	return os.Getenv(childEnv) == "1"
}

// Run re-executes the test binary restricted to the calling test, with the
// child marker set, and waits for the child to terminate. Spawn failures and
// a child that outlives the timeout fail the calling test; every genuine
// termination, clean or fatal, is returned as a Result for the caller to
// assert on.
func Run(t *testing.T, opts ...Option) Result {
	t.Helper()
	if Child() {
		t.Fatal("deathtest.Run called from the death-test child; gate the death body with deathtest.Child")
	}

	cfg := runConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	args := []string{"-test.run=" + runPattern(t.Name()), "-test.count=1"}
	if testing.Verbose() {
		args = append(args, "-test.v=true")
	}
	cmd := exec.CommandContext(ctx, os.Args[0], args...)
	cmd.Env = append(os.Environ(), childEnv+"=1")
	configureSysProcAttr(cmd)

	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		t.Fatalf("death-test child did not terminate within %v\nchild output:\n%s", cfg.timeout, out)
	}
	if err == nil {
		return Result{ExitCode: 0, Output: out}
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("spawn death-test child: %v", err)
	}
	if sig, ok := terminationSignal(exitErr.ProcessState); ok {
		return Result{ExitCode: -1, Signaled: true, Signal: sig, Output: out}
	}
	return Result{ExitCode: exitErr.ExitCode(), Output: out}
}

// runPattern builds a -test.run pattern matching exactly the named test,
// anchoring every subtest segment so sibling tests with a shared prefix are
// not pulled into the child.
func runPattern(name string) string {
	segs := strings.Split(name, "/")
	for i, s := range segs {
		segs[i] = "^" + regexp.QuoteMeta(s) + "$"
	}
	return strings.Join(segs, "/")
}
