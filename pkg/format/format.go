// Package format turns assertion operands into text for failure messages.
// Output never depends on the process locale.
package format

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Formatter converts values to their message representation.
type Formatter interface {
	Bool(v bool) string
	Int(v int64) string
	Uint(v uint64) string
	Float(v float64) string
	Concat(parts ...string) string
	Value(v any) string
}

// Plain is the default Formatter.
type Plain struct{}

// Default is the Formatter used when none is injected.
var Default Formatter = Plain{}

func (Plain) Bool(v bool) string {
	return strconv.FormatBool(v)
}

func (Plain) Int(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (Plain) Uint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Float uses the shortest decimal that round-trips, keeping one fractional
// digit for integral values: 1 -> "1.0", 0.25 -> "0.25".
func (Plain) Float(v float64) string {
	return formatFloat(v, 64)
}

// formatFloat keeps the shortest representation at the operand's own
// precision, so float32(0.1) is "0.1".
func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (Plain) Concat(parts ...string) string {
	return strings.Join(parts, "")
}

// Value dispatches on the dynamic type of v, including named types whose
// underlying kind is boolean or numeric.
func (p Plain) Value(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return p.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return p.Uint(rv.Uint())
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return p.Float(rv.Float())
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
