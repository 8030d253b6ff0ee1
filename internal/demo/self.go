package demo

import (
	"strings"

	"github.com/dkoosis/macchiato/pkg/expect"
	"github.com/dkoosis/macchiato/pkg/report"
	"github.com/dkoosis/macchiato/pkg/result"
	"github.com/dkoosis/macchiato/pkg/suite"
)

// Self runs macchiato's own rules through macchiato. Inner runs use their
// own reporters so they never touch the outer counters.
func Self(s *suite.Suite) {
	s.Describe("expect", func() {
		s.Describe("never", func() {
			s.It("inverts the next matcher", func() result.TestResult {
				return expect.Expect(3).To().Never().Equal(5).Result()
			})
			s.It("applies to one matcher only", func() result.TestResult {
				inner := expect.Expect(4).Never().Equal(5).Equal(5)
				return expect.Expect(inner.Passed()).To().Equal(false).Result()
			})
			s.It("cancels out when used twice", func() result.TestResult {
				return expect.Expect(1).Never().Never().Equal(1).Result()
			})
		})

		s.Describe("accumulation", func() {
			s.It("keeps failing once a matcher fails", func() result.TestResult {
				inner := expect.Expect(10).Above(20).Below(100).Result()
				return expect.Expect(inner.DidPass).Never().Equal(true).Result()
			})
			s.It("records messages of failing matchers in call order", func() result.TestResult {
				inner := expect.Expect(10).Equal(1).Least(0).Equal(2).Result()
				return expect.Expect(inner.Message).
					To().Equal("Expected 10 to equal 1\nExpected 10 to equal 2").
					Result()
			})
		})

		s.Describe("closeTo", func() {
			s.It("includes the tolerance boundary", func() result.TestResult {
				return expect.Expect(1.0001).To().Be().CloseToWithin(1.0, 0.0001).Result()
			})
		})

		s.Describe("within", func() {
			s.It("excludes both bounds", func() result.TestResult {
				return expect.Expect(4).Never().Within(4, 6).
					And().Never().Within(6, 8).
					And().Within(3, 5).
					Result()
			})
		})
	})

	s.Describe("suite", func() {
		s.It("indents groups one level less than their children", func() result.TestResult {
			out, _ := suite.Run(report.Config{}, func(in *suite.Suite) {
				in.Describe("A", func() {
					in.Describe("B", func() {
						in.It("t", func() result.TestResult { return expect.Expect(1).Equal(1).Result() })
					})
				})
			})
			return expect.Expect(strings.HasPrefix(out, "A\n\tB\n\t\tPass: t\n")).To().Equal(true).Result()
		})
		s.It("counts an It without a body as pending", func() result.TestResult {
			_, stats := suite.Run(report.Config{}, func(in *suite.Suite) {
				in.It("unwritten", nil)
			})
			return expect.Expect(stats).To().Equal(result.Stats{Pending: 1}).Result()
		})
		s.It("balances depth after nested groups", func() result.TestResult {
			r := report.New(report.Config{})
			in := suite.New(r)
			in.Describe("a", func() {
				in.Describe("b", func() {
					in.Describe("c", func() {})
				})
			})
			return expect.Expect(r.Depth()).To().Equal(uint(0)).Result()
		})
	})
}
