// Package deathtest runs a test's death body in a re-executed child process
// and reports how the child terminated.
//
// Go has no in-process death test: a fatal signal takes the whole test
// binary with it. The helper-process pattern splits the test in two. The
// parent re-executes its own binary restricted to the calling test with a
// child marker in the environment; the child sees the marker, runs the death
// body, and dies. The parent collects the child's termination status and
// output and asserts on them:
//
//	func TestAssertAborts(t *testing.T) {
//	    if deathtest.Child() {
//	        g := silentdeath.New()
//	        _ = g // the process dies before any restore
//	        unix.Kill(unix.Getpid(), unix.SIGABRT)
//	        return
//	    }
//
//	    res := deathtest.Run(t)
//	    if !res.Signaled || res.Signal != unix.SIGABRT {
//	        t.Fatalf("child did not die from SIGABRT: %+v", res)
//	    }
//	}
//
// Run never runs the death body itself; tests that forget the Child gate
// fail fast instead of forking recursively.
package deathtest
