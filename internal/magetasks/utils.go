package magetasks

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// IsCommandNotFound reports whether err means the tool is not installed.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}

// run executes a tool with its output attached to the terminal.
var run = sh.RunV

// output executes a tool and returns its trimmed stdout.
var output = sh.Output

// optional runs a tool that may be missing; a missing tool is a warning.
func optional(hint string, cmd string, args ...string) error {
	err := run(cmd, args...)
	if IsCommandNotFound(err) {
		PrintWarning(cmd + " not found (install: " + hint + ")")
		return nil
	}
	return err
}
