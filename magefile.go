//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/dkoosis/macchiato/internal/magetasks"
)

// Default target builds the binary.
var Default = Build

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

// Build builds bin/macchiato with version information.
func Build() error {
	return magetasks.BuildAll()
}

// Clean removes build artifacts.
func Clean() error {
	return magetasks.Clean()
}

// Demo runs the bundled suites with the breakdown table.
func Demo() error {
	return magetasks.Demo()
}

// QA lints, tests and builds.
func QA() {
	magetasks.PrintBanner("macchiato Quality Assurance", 80)
	mg.SerialDeps(Lint.All, Test.All, Build)
	magetasks.PrintSuccess("QA complete!")
}

// Lint namespace for linting commands.
type Lint mg.Namespace

// All runs all linters.
func (Lint) All() error {
	return magetasks.LintAll()
}

// Format checks code formatting.
func (Lint) Format() error {
	return magetasks.LintFormat()
}

// Vet runs go vet.
func (Lint) Vet() error {
	return magetasks.LintVet()
}

// Staticcheck runs staticcheck.
func (Lint) Staticcheck() error {
	return magetasks.LintStaticcheck()
}

// Golangci runs golangci-lint.
func (Lint) Golangci() error {
	return magetasks.LintGolangci()
}

// Test namespace for testing commands.
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return magetasks.TestAll()
}

// Coverage runs tests with coverage.
func (Test) Coverage() error {
	return magetasks.TestCoverage()
}

// Race runs tests with the race detector.
func (Test) Race() error {
	return magetasks.TestRace()
}
