package magetasks

// TestAll runs all tests.
func TestAll() error {
	return testWith("Tests", "All tests passed", "-v")
}

// TestCoverage runs tests with a coverage profile and prints the summary.
func TestCoverage() error {
	if err := testWith("Test Coverage", "Coverage report generated", "-coverprofile=coverage.out"); err != nil {
		return err
	}
	_ = run("go", "tool", "cover", "-func=coverage.out")
	return nil
}

// TestRace runs tests with the race detector.
func TestRace() error {
	return testWith("Race Detector", "No races detected", "-race")
}

func testWith(header, success string, flags ...string) error {
	PrintHeader(header)
	args := append([]string{"test"}, flags...)
	args = append(args, "./...")
	if err := run("go", args...); err != nil {
		PrintError("Tests failed")
		return err
	}
	PrintSuccess(success)
	return nil
}
