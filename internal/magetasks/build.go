package magetasks

import (
	"fmt"
	"os"
	"time"
)

// Ldflags returns the linker flags stamping internal/version.
func Ldflags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

// BuildAll builds the macchiato binary.
func BuildAll() error {
	PrintHeader("Build")

	flags := Ldflags(gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := run("go", "build", "-ldflags", flags, "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}
	PrintSuccess("Built: " + BinPath)
	return nil
}

// Clean removes build and coverage artifacts.
func Clean() error {
	PrintHeader("Clean")
	for _, path := range []string{"./bin", "coverage.out"} {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	PrintSuccess("Cleaned")
	return nil
}

// Demo runs every bundled suite through the CLI with the breakdown table.
func Demo() error {
	PrintHeader("Demo")
	err := run("go", "run", MainPackage, "run", "--table")
	if err != nil {
		// The example suite fails on purpose.
		PrintWarning("demo finished with failing tests")
	}
	return nil
}

func gitVersion() string {
	v, err := output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}

func gitCommit() string {
	c, err := output("git", "rev-parse", "--short", "HEAD")
	if err != nil || c == "" {
		return "unknown"
	}
	return c
}
