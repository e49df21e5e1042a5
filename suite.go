package silentdeath

import "github.com/stretchr/testify/suite"

// Suite is a test-suite base that suppresses crash reporting for every test
// in the suite. Embed it instead of suite.Suite when writing death tests;
// each test then runs inside its own suppression window with no per-test
// declaration.
//
// The guard exists exactly between SetupTest and TearDownTest. When a test
// body terminates the process, TearDownTest never runs; that is the expected
// death-test outcome and requires no cleanup. Suites that define their own
// SetupTest or TearDownTest shadow these hooks and must call the embedded
// ones themselves.
type Suite struct {
	suite.Suite

	guard *Guard
}

// SetupTest opens the suppression window for the upcoming test.
func (s *Suite) SetupTest() {
	s.guard = New()
}

// TearDownTest closes the suppression window, restoring the dispositions
// that were active before SetupTest. Safe to call when no guard is held.
func (s *Suite) TearDownTest() {
	if s.guard == nil {
		return
	}
	s.guard.Restore()
	s.guard = nil
}
