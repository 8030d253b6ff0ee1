// Package expect provides chainable BDD assertions.
//
//	expect.Expect(3).To().Never().Equal(5).Result()
//
// Every matcher returns the same *Chain so calls can be strung together.
// A matcher that does not hold is a failing assertion, not an error: its
// message is accumulated and the chain keeps going.
package expect

import (
	"github.com/dkoosis/macchiato/pkg/format"
	"github.com/dkoosis/macchiato/pkg/result"
)

// DefaultTolerance is the CloseTo tolerance when none is given.
const DefaultTolerance = 0.0001

// Flags are the modifiers in force for the next matcher.
type Flags struct {
	Negate bool
}

// Chain is one expectation over an actual value.
type Chain[T any] struct {
	actual T
	flags  Flags
	result result.TestResult
	format format.Formatter
}

// Option configures a Chain.
type Option func(*options)

type options struct {
	formatter format.Formatter
}

// WithFormatter replaces the formatter used for failure messages.
func WithFormatter(f format.Formatter) Option {
	return func(o *options) {
		if f != nil {
			o.formatter = f
		}
	}
}

// Expect starts a chain over actual.
func Expect[T any](actual T, opts ...Option) *Chain[T] {
	o := options{formatter: format.Default}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chain[T]{
		actual: actual,
		result: result.New(),
		format: o.formatter,
	}
}

// Never negates the next matcher only. Calling it twice cancels out.
func (c *Chain[T]) Never() *Chain[T] {
	c.flags.Negate = !c.flags.Negate
	return c
}

// Result returns a copy of the accumulated result.
func (c *Chain[T]) Result() result.TestResult {
	return c.result
}

// Passed reports whether every matcher so far has held.
func (c *Chain[T]) Passed() bool {
	return c.result.DidPass
}

// Flags returns the modifiers that will apply to the next matcher.
func (c *Chain[T]) Flags() Flags {
	return c.flags
}

// Actual returns the wrapped value.
func (c *Chain[T]) Actual() T {
	return c.actual
}

// record folds one matcher outcome into the result and clears negation.
func (c *Chain[T]) record(raw bool, message string) *Chain[T] {
	pass := raw
	if c.flags.Negate {
		pass = !raw
	}
	c.result.DidPass = c.result.DidPass && pass
	if !pass {
		if c.result.Message != "" {
			c.result.Message += "\n"
		}
		c.result.Message += message
	}
	c.flags.Negate = false
	return c
}

// not returns "not " when the next matcher is negated.
func (c *Chain[T]) not() string {
	if c.flags.Negate {
		return "not "
	}
	return ""
}

func (c *Chain[T]) describe(verb string, operands ...string) string {
	parts := []string{"Expected ", c.format.Value(c.actual), " to ", c.not(), verb}
	parts = append(parts, operands...)
	return c.format.Concat(parts...)
}
