package magetasks

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, expected: true},
		{name: "wrapped exec.ErrNotFound", err: fmt.Errorf("staticcheck: %w", exec.ErrNotFound), expected: true},
		{name: "executable file not found", err: errors.New("executable file not found"), expected: true},
		{name: "no such file or directory", err: errors.New("no such file or directory"), expected: true},
		{name: "other error", err: errors.New("exit status 1"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCommandNotFound(tt.err))
		})
	}
}

func TestLdflags(t *testing.T) {
	got := Ldflags("v1.2.3", "abc123", "2026-01-02T03:04:05Z")

	assert.Contains(t, got, "-X 'github.com/dkoosis/macchiato/internal/version.Version=v1.2.3'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/macchiato/internal/version.CommitHash=abc123'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/macchiato/internal/version.BuildDate=2026-01-02T03:04:05Z'")
}

// stubTools replaces the command runners for one test.
func stubTools(t *testing.T, runErr error, out string) *[]string {
	t.Helper()
	var calls []string
	origRun, origOutput, origOut := run, output, Out
	t.Cleanup(func() { run, output, Out = origRun, origOutput, origOut })

	Out = &bytes.Buffer{}
	run = func(cmd string, args ...string) error {
		calls = append(calls, cmd+" "+strings.Join(args, " "))
		return runErr
	}
	output = func(cmd string, args ...string) (string, error) {
		calls = append(calls, cmd+" "+strings.Join(args, " "))
		return out, nil
	}
	return &calls
}

func TestOptional_MissingToolWarns(t *testing.T) {
	stubTools(t, exec.ErrNotFound, "")

	err := optional("go install example.com/tool@latest", "tool", "./...")

	require.NoError(t, err)
	assert.Contains(t, Out.(*bytes.Buffer).String(), "tool not found")
}

func TestOptional_FailurePropagates(t *testing.T) {
	stubTools(t, errors.New("exit status 1"), "")

	assert.Error(t, optional("hint", "tool"))
}

func TestLintFormat_ReportsFiles(t *testing.T) {
	stubTools(t, nil, "pkg/expect/expect.go")

	err := LintFormat()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pkg/expect/expect.go")
}

func TestBuildAll_StampsVersion(t *testing.T) {
	calls := stubTools(t, nil, "v0.1.0")

	require.NoError(t, BuildAll())

	last := (*calls)[len(*calls)-1]
	assert.True(t, strings.HasPrefix(last, "go build -ldflags "))
	assert.Contains(t, last, "internal/version.Version=v0.1.0")
	assert.True(t, strings.HasSuffix(last, "-o ./bin/macchiato ./cmd/macchiato"))
}

func TestTestWith_BuildsArgs(t *testing.T) {
	calls := stubTools(t, nil, "")

	require.NoError(t, TestRace())

	assert.Equal(t, []string{"go test -race ./..."}, *calls)
}
