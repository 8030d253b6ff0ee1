package expect

import (
	"math"

	"github.com/google/go-cmp/cmp"
)

// Equal holds when actual and expected are equal values per go-cmp.
// Types go-cmp cannot compare (unexported fields without options) panic.
func (c *Chain[T]) Equal(expected T) *Chain[T] {
	return c.record(
		cmp.Equal(c.actual, expected),
		c.describe("equal ", c.format.Value(expected)),
	)
}

// Eql is an alias for Equal.
func (c *Chain[T]) Eql(expected T) *Chain[T] {
	return c.Equal(expected)
}

// CloseTo holds when |actual - expected| <= DefaultTolerance.
func (c *Chain[T]) CloseTo(expected float64) *Chain[T] {
	return c.CloseToWithin(expected, DefaultTolerance)
}

// CloseToWithin holds when |actual - expected| <= tolerance. The bound is
// inclusive.
func (c *Chain[T]) CloseToWithin(expected, tolerance float64) *Chain[T] {
	if tolerance < 0 || math.IsNaN(tolerance) {
		misuse("CloseTo", "tolerance %v must be a non-negative number", tolerance)
	}
	actual := c.numeric("CloseTo")
	return c.record(
		math.Abs(actual-expected) <= tolerance,
		c.describe("equal ", c.format.Float(expected), " within tolerance of ", c.format.Float(tolerance)),
	)
}

// Within holds when lower < actual < upper.
func (c *Chain[T]) Within(lower, upper float64) *Chain[T] {
	actual := c.numeric("Within")
	return c.record(
		actual > lower && actual < upper,
		c.describe("be above ", c.format.Float(lower), " and below ", c.format.Float(upper)),
	)
}

// Above holds when actual > expected.
func (c *Chain[T]) Above(expected float64) *Chain[T] {
	actual := c.numeric("Above")
	return c.record(actual > expected, c.describe("be greater than ", c.format.Float(expected)))
}

// Gt is an alias for Above.
func (c *Chain[T]) Gt(expected float64) *Chain[T] { return c.Above(expected) }

// GreaterThan is an alias for Above.
func (c *Chain[T]) GreaterThan(expected float64) *Chain[T] { return c.Above(expected) }

// Least holds when actual >= expected.
func (c *Chain[T]) Least(expected float64) *Chain[T] {
	actual := c.numeric("Least")
	return c.record(actual >= expected, c.describe("be greater than or equal to ", c.format.Float(expected)))
}

// Gte is an alias for Least.
func (c *Chain[T]) Gte(expected float64) *Chain[T] { return c.Least(expected) }

// Below holds when actual < expected.
func (c *Chain[T]) Below(expected float64) *Chain[T] {
	actual := c.numeric("Below")
	return c.record(actual < expected, c.describe("be lesser than ", c.format.Float(expected)))
}

// Lt is an alias for Below.
func (c *Chain[T]) Lt(expected float64) *Chain[T] { return c.Below(expected) }

// LessThan is an alias for Below.
func (c *Chain[T]) LessThan(expected float64) *Chain[T] { return c.Below(expected) }

// Most holds when actual <= expected.
func (c *Chain[T]) Most(expected float64) *Chain[T] {
	actual := c.numeric("Most")
	return c.record(actual <= expected, c.describe("be less than or equal to ", c.format.Float(expected)))
}

// Lte is an alias for Most.
func (c *Chain[T]) Lte(expected float64) *Chain[T] { return c.Most(expected) }

// Satisfy holds when pred(actual) is true.
func (c *Chain[T]) Satisfy(pred func(T) bool) *Chain[T] {
	if pred == nil {
		misuse("Satisfy", "predicate is nil")
	}
	return c.SatisfyResult(pred(c.actual), c.describe("satisfy the given test"))
}

// SatisfyWithMessage holds when pred(actual) is true. msg builds the failure
// message from the actual value and the flags in force for this matcher.
func (c *Chain[T]) SatisfyWithMessage(pred func(T) bool, msg func(T, Flags) string) *Chain[T] {
	if pred == nil || msg == nil {
		misuse("Satisfy", "predicate and message builder must be non-nil")
	}
	ok := pred(c.actual)
	return c.SatisfyResult(ok, msg(c.actual, c.flags))
}

// SatisfyResult records a verdict computed by the caller.
func (c *Chain[T]) SatisfyResult(ok bool, message string) *Chain[T] {
	return c.record(ok, message)
}
