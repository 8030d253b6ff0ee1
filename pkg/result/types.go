// Package result holds the outcome model shared by expectations, the suite
// executor and the reporter.
package result

// TestResult is what a test callback hands back to the executor.
// Use New for the default (passing, empty message) value; the zero value
// reports a failure.
type TestResult struct {
	Message string
	DidPass bool
}

// New returns the default result: passing with no message.
func New() TestResult {
	return TestResult{DidPass: true}
}

// Pass returns a passing result.
func Pass() TestResult {
	return New()
}

// Fail returns a failing result carrying msg.
func Fail(msg string) TestResult {
	return TestResult{Message: msg}
}

// Outcome classifies a single It invocation.
type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeFail
	OutcomePending
)

// String returns "pass", "fail" or "pending".
func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeFail:
		return "fail"
	case OutcomePending:
		return "pending"
	default:
		return "unknown"
	}
}

// Classify maps an evaluated result to OutcomePass or OutcomeFail.
func Classify(r TestResult) Outcome {
	if r.DidPass {
		return OutcomePass
	}
	return OutcomeFail
}
