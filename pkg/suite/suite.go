// Package suite runs describe/it trees against a reporter.
//
// Calls execute immediately: a Describe returns only after its whole
// subtree has run, and every It is recorded before the next statement.
//
//	s := suite.New(report.New(report.Config{}))
//	s.Describe("Foo", func() {
//		s.It("should baz", func() result.TestResult {
//			return expect.Expect(true).To().Equal(true).Result()
//		})
//		s.Pending("should norf")
//	})
//	fmt.Print(s.Output())
package suite

import (
	"github.com/dkoosis/macchiato/pkg/report"
	"github.com/dkoosis/macchiato/pkg/result"
)

// TestFunc is the body of an It. It returns the verdict built by one or
// more expectation chains.
type TestFunc func() result.TestResult

// Suite executes groups and tests, feeding outcomes to its reporter.
type Suite struct {
	reporter *report.Reporter
}

// New creates a suite over r.
func New(r *report.Reporter) *Suite {
	return &Suite{reporter: r}
}

// Run starts a fresh run on a new reporter built from cfg, executes body and
// returns the finished report.
func Run(cfg report.Config, body func(s *Suite), opts ...report.Option) (string, result.Stats) {
	s := New(report.New(cfg, opts...))
	s.Start()
	body(s)
	out := s.Finish()
	return out, s.Stats()
}

// Start resets the reporter for a new run.
func (s *Suite) Start() {
	s.reporter.Start()
}

// Finish ends the run and returns the report.
func (s *Suite) Finish() string {
	return s.reporter.Finish()
}

// Describe logs description, runs fn one level deeper and restores the
// depth afterwards, even if fn panics.
func (s *Suite) Describe(description string, fn func()) {
	s.reporter.Enter(description)
	defer s.reporter.Leave()
	if fn != nil {
		fn()
	}
}

// It runs fn and records its result. A nil fn declares a pending test.
func (s *Suite) It(description string, fn TestFunc) {
	if fn == nil {
		s.Pending(description)
		return
	}
	s.reporter.Record(description, fn())
}

// Pending records a test that has not been written yet.
func (s *Suite) Pending(description string) {
	s.reporter.RecordPending(description)
}

// Output returns the report so far, summary included.
func (s *Suite) Output() string {
	return s.reporter.Output()
}

// Stats returns the counters so far.
func (s *Suite) Stats() result.Stats {
	return s.reporter.Stats()
}

// Reporter returns the underlying reporter.
func (s *Suite) Reporter() *report.Reporter {
	return s.reporter
}
