package expect

import (
	"fmt"
	"reflect"
)

// MisuseError is the panic value raised when a matcher is called in a way
// that cannot be evaluated, such as an ordering matcher on a string.
type MisuseError struct {
	Matcher string
	Reason  string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("expect: %s: %s", e.Matcher, e.Reason)
}

func misuse(matcher, msg string, args ...any) {
	panic(&MisuseError{Matcher: matcher, Reason: fmt.Sprintf(msg, args...)})
}

// toFloat widens any integer or float kind, named types included.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func (c *Chain[T]) numeric(matcher string) float64 {
	f, ok := toFloat(c.actual)
	if !ok {
		misuse(matcher, "actual value %v (%T) is not numeric", c.actual, c.actual)
	}
	return f
}
