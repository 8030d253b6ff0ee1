package report

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/macchiato/pkg/result"
)

func TestReporter_NestedGroups(t *testing.T) {
	t.Parallel()

	r := New(Config{})
	r.Start()
	r.Enter("A")
	r.Enter("B")
	r.Record("t", result.Pass())
	r.Leave()
	r.Leave()

	want := "A\n\tB\n\t\tPass: t\n\n\n1 passing\n0 failing\n0 pending\n"
	assert.Equal(t, want, r.Finish())
	assert.Equal(t, uint(0), r.Depth())
}

func TestReporter_FailureMessageIndentedDeeper(t *testing.T) {
	t.Parallel()

	r := New(Config{})
	r.Enter("calc")
	r.Record("adds", result.Fail("Expected 1 to equal 2\nExpected 3 to equal 4"))
	r.Leave()

	want := "calc\n" +
		"\tFail: adds\n" +
		"\t\tExpected 1 to equal 2\n" +
		"\t\tExpected 3 to equal 4\n"
	assert.True(t, strings.HasPrefix(r.Output(), want), r.Output())
	assert.Equal(t, result.Stats{Failed: 1}, r.Stats())
}

func TestReporter_FailWithoutMessage(t *testing.T) {
	t.Parallel()

	r := New(Config{})
	r.Record("bare", result.TestResult{})
	assert.True(t, strings.HasPrefix(r.Output(), "Fail: bare\n\n\n0 passing\n1 failing\n"))
}

func TestReporter_Pending(t *testing.T) {
	t.Parallel()

	r := New(Config{})
	r.Enter("todo")
	r.RecordPending("unwritten")
	r.Leave()

	assert.Equal(t, "todo\n\t----: unwritten\n\n\n0 passing\n0 failing\n1 pending\n", r.Output())
	assert.Equal(t, result.Stats{Pending: 1}, r.Stats())
}

func TestReporter_LeaveAtZeroIsNoop(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	r := New(Config{}, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	r.Leave()
	assert.Equal(t, uint(0), r.Depth())
	assert.Contains(t, logs.String(), "leave without matching enter")

	r.Enter("x")
	r.Leave()
	r.Leave()
	assert.Equal(t, uint(0), r.Depth())
}

func TestReporter_StartResets(t *testing.T) {
	t.Parallel()

	r := New(Config{})
	firstID := r.RunID()
	r.Enter("g")
	r.Record("a", result.Pass())

	r.Start()
	assert.NotEqual(t, firstID, r.RunID())
	assert.Equal(t, uint(0), r.Depth())
	assert.Equal(t, result.Stats{}, r.Stats())
	assert.Empty(t, r.Entries())
	assert.Equal(t, "\n\n0 passing\n0 failing\n0 pending\n", r.Output())
}

func TestReporter_Color(t *testing.T) {
	t.Parallel()

	build := func(useColor bool) string {
		r := New(Config{UseColor: useColor})
		r.Enter("g")
		r.Record("ok", result.Pass())
		r.Record("bad", result.Fail("nope"))
		r.RecordPending("later")
		r.Leave()
		return r.Output()
	}

	plain := build(false)
	colored := build(true)

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, plain, stripansi.Strip(colored))
}

func TestReporter_Color_KeepsText(t *testing.T) {
	t.Parallel()

	build := func(useColor bool) string {
		r := New(Config{UseColor: useColor})
		r.Enter("g")
		r.RecordPending("a\tb")
		r.RecordPending("line1\nline2")
		r.Record("bad", result.Fail("short\na much longer line"))
		r.Leave()
		return r.Output()
	}

	plain := build(false)
	colored := build(true)

	assert.Contains(t, plain, "\t----: a\tb\n")
	assert.Contains(t, plain, "\t----: line1\nline2\n")
	assert.Equal(t, plain, stripansi.Strip(colored))
}

func TestColorTheme_OnlyAddsEscapes(t *testing.T) {
	t.Parallel()

	th := ColorTheme()
	for _, s := range []string{"Pass", "with\ttab", "two\nlines"} {
		got := th.Green(s)
		assert.True(t, strings.HasPrefix(got, "\x1b["), got)
		assert.True(t, strings.HasSuffix(got, s+"\x1b[0m"), got)
		assert.Equal(t, s, stripansi.Strip(th.Cyan(s)))
	}
}

func TestTheme_PlainIsIdentity(t *testing.T) {
	t.Parallel()

	th := PlainTheme()
	for _, s := range []string{"", "Pass", "with\ttab"} {
		assert.Equal(t, s, th.Green(s))
		assert.Equal(t, s, th.Red(s))
		assert.Equal(t, s, th.Cyan(s))
	}
}

func TestReporter_Entries(t *testing.T) {
	t.Parallel()

	r := New(Config{})
	r.Enter("outer")
	r.Enter("inner")
	r.Record("deep", result.Fail("why"))
	r.Leave()
	r.RecordPending("shallow")
	r.Leave()

	entries := r.Entries()
	require.Len(t, entries, 4)

	assert.Equal(t, Entry{Kind: EntryGroup, Depth: 0, Description: "outer"}, entries[0])
	assert.Equal(t, Entry{Kind: EntryGroup, Depth: 1, Path: []string{"outer"}, Description: "inner"}, entries[1])
	assert.Equal(t, Entry{
		Kind: EntryTest, Depth: 2, Path: []string{"outer", "inner"},
		Description: "deep", Outcome: result.OutcomeFail, Message: "why",
	}, entries[2])
	assert.Equal(t, Entry{
		Kind: EntryTest, Depth: 1, Path: []string{"outer"},
		Description: "shallow", Outcome: result.OutcomePending,
	}, entries[3])

	entries[0].Description = "mutated"
	assert.Equal(t, "outer", r.Entries()[0].Description)
}

func TestReporter_FinishLogsRun(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	r := New(Config{}, WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	r.Start()
	r.Enter("left open")
	r.Record("a", result.Pass())
	r.Finish()

	out := logs.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "run finished with open groups")
	assert.Contains(t, out, "passing=1")
	assert.Contains(t, out, "run_id="+r.RunID())
}
