package demo

import (
	"github.com/dkoosis/macchiato/pkg/expect"
	"github.com/dkoosis/macchiato/pkg/result"
	"github.com/dkoosis/macchiato/pkg/suite"
)

// Example shows every outcome once.
func Example(s *suite.Suite) {
	s.Describe("Foo", func() {
		s.Describe("with bar", func() {
			s.It("should baz", func() result.TestResult {
				return expect.Expect(true).To().Equal(true).Result()
			})

			// false != true
			s.It("should qux", func() result.TestResult {
				return expect.Expect(false).To().Equal(true).Result()
			})

			s.Pending("should norf")
		})
	})
}

type program struct {
	foo int
}

func newProgram() *program { return &program{foo: 1} }

func (p *program) bar() int { return p.foo - 1 }

// ProgramSpecs describes a tiny stateful type.
func ProgramSpecs(s *suite.Suite) {
	s.Describe("Program", func() {
		s.It("should have field 'foo' with initial value 1", func() result.TestResult {
			p := newProgram()
			return expect.Expect(p.foo).To().Equal(1).Result()
		})
		s.It("should have function 'bar' which returns 0 in initial state", func() result.TestResult {
			p := newProgram()
			return expect.Expect(p.bar()).To().Equal(0).Result()
		})
		s.It("should have function 'bar' which returns 999 when 'foo' is 1000", func() result.TestResult {
			p := newProgram()
			p.foo = 1000
			return expect.Expect(p.bar()).To().Equal(999).Result()
		})
	})
}
