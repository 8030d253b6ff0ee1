package result

// Stats holds the pass/fail/pending counters of a run or a group.
type Stats struct {
	Passed  uint
	Failed  uint
	Pending uint
}

// Record increments the counter for o. Unknown outcomes are ignored.
func (s *Stats) Record(o Outcome) {
	switch o {
	case OutcomePass:
		s.Passed++
	case OutcomeFail:
		s.Failed++
	case OutcomePending:
		s.Pending++
	}
}

// Merge adds other's counters to s.
func (s *Stats) Merge(other Stats) {
	s.Passed += other.Passed
	s.Failed += other.Failed
	s.Pending += other.Pending
}

// Total returns the number of recorded It invocations.
func (s Stats) Total() uint {
	return s.Passed + s.Failed + s.Pending
}

// Status returns "fail" if anything failed, "pending" if nothing ran to a
// verdict, and "pass" otherwise.
func (s Stats) Status() string {
	if s.Failed > 0 {
		return "fail"
	}
	if s.Passed == 0 {
		return "pending"
	}
	return "pass"
}
