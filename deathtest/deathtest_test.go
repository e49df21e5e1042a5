package deathtest

import (
	"fmt"
	"os"
	"testing"
	"time"
)

func TestRunPattern(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name string
		want string
	}{
		"top level":       {name: "TestFoo", want: "^TestFoo$"},
		"subtest":         {name: "TestFoo/bar", want: "^TestFoo$/^bar$"},
		"nested subtest":  {name: "TestFoo/bar/baz", want: "^TestFoo$/^bar$/^baz$"},
		"regexp metachar": {name: "TestFoo/a+b", want: `^TestFoo$/^a\+b$`},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := runPattern(tc.name); got != tc.want {
				t.Errorf("runPattern(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestWithTimeoutValidation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		d        time.Duration
		panics   bool
		panicMsg string
	}{
		"zero":     {d: 0, panics: true, panicMsg: "deathtest: timeout must be greater than 0, got 0s"},
		"negative": {d: -time.Second, panics: true, panicMsg: "deathtest: timeout must be greater than 0, got -1s"},
		"valid":    {d: time.Second},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				r := recover()
				if tc.panics && r == nil {
					t.Fatal("expected panic but didn't get one")
				}
				if !tc.panics && r != nil {
					t.Fatalf("unexpected panic: %v", r)
				}
				if tc.panics && fmt.Sprint(r) != tc.panicMsg {
					t.Fatalf("expected panic message %q, got %q", tc.panicMsg, r)
				}
			}()
			WithTimeout(tc.d)
		})
	}
}

func TestRunCleanExit(t *testing.T) {
	if Child() {
		// A death body that declines to die: the child exits clean.
		return
	}

	res := Run(t)
	if res.Signaled {
		t.Fatalf("child reported as signaled: %+v\nchild output:\n%s", res, res.Output)
	}
	if res.ExitCode != 0 {
		t.Fatalf("child exit code = %d, want 0\nchild output:\n%s", res.ExitCode, res.Output)
	}
}

func TestRunReportsExitCode(t *testing.T) {
	if Child() {
		os.Exit(7)
	}

	res := Run(t)
	if res.Signaled {
		t.Fatalf("child reported as signaled: %+v", res)
	}
	if res.ExitCode != 7 {
		t.Fatalf("child exit code = %d, want 7\nchild output:\n%s", res.ExitCode, res.Output)
	}
}
