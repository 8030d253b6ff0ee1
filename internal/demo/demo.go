// Package demo bundles the suites the macchiato command can run.
package demo

import (
	"sort"

	"github.com/dkoosis/macchiato/pkg/suite"
)

// Definition is a named suite body.
type Definition struct {
	Name        string
	Description string
	Body        func(s *suite.Suite)
}

var registry = map[string]Definition{
	"example": {
		Name:        "example",
		Description: "nested groups with a passing, a failing and a pending test",
		Body:        Example,
	},
	"program": {
		Name:        "program",
		Description: "specs for a small stateful type",
		Body:        ProgramSpecs,
	},
	"self": {
		Name:        "self",
		Description: "macchiato checking its own expectation and reporting rules",
		Body:        Self,
	},
}

// Names returns the registered suite names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a suite by name.
func Lookup(name string) (Definition, bool) {
	d, ok := registry[name]
	return d, ok
}
