// Package report accumulates the text report of a test run: one line per
// group and test, indented by nesting depth, followed by a summary.
//
// The reporter performs no I/O. Callers take Output (or Finish) and write it
// wherever they like.
package report

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dkoosis/macchiato/pkg/format"
	"github.com/dkoosis/macchiato/pkg/result"
)

// Config holds the externally tunable reporter behavior.
type Config struct {
	UseColor bool
}

// EntryKind distinguishes group lines from test lines.
type EntryKind int

const (
	EntryGroup EntryKind = iota
	EntryTest
)

// Entry is one logged line of the report in structured form.
type Entry struct {
	Kind        EntryKind
	Depth       uint
	Path        []string // enclosing group descriptions, outermost first
	Description string
	Outcome     result.Outcome // tests only
	Message     string         // failing tests only
}

// Reporter owns the state of one run.
type Reporter struct {
	cfg    Config
	theme  Theme
	format format.Formatter
	logger *slog.Logger

	runID   string
	out     strings.Builder
	depth   uint
	path    []string
	stats   result.Stats
	entries []Entry
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLogger sets the logger used for run lifecycle diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTheme overrides the theme derived from Config.UseColor.
func WithTheme(t Theme) Option {
	return func(r *Reporter) {
		r.theme = t
	}
}

// WithFormatter replaces the formatter used for summary counts.
func WithFormatter(f format.Formatter) Option {
	return func(r *Reporter) {
		if f != nil {
			r.format = f
		}
	}
}

// New creates a reporter ready for a run.
func New(cfg Config, opts ...Option) *Reporter {
	r := &Reporter{
		cfg:    cfg,
		theme:  ThemeFor(cfg.UseColor),
		format: format.Default,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.reset()
	return r
}

func (r *Reporter) reset() {
	r.runID = uuid.NewString()
	r.out.Reset()
	r.depth = 0
	r.path = nil
	r.stats = result.Stats{}
	r.entries = nil
}

// Start discards any previous state and begins a new run.
func (r *Reporter) Start() {
	r.reset()
	r.logger.Debug("run started", slog.String("subsystem", "report"), slog.String("run_id", r.runID))
}

// Finish ends the run and returns the full report.
func (r *Reporter) Finish() string {
	if r.depth != 0 {
		r.logger.Warn("run finished with open groups",
			slog.String("subsystem", "report"),
			slog.String("run_id", r.runID),
			slog.Uint64("depth", uint64(r.depth)))
	}
	r.logger.Debug("run finished",
		slog.String("subsystem", "report"),
		slog.String("run_id", r.runID),
		slog.Uint64("passing", uint64(r.stats.Passed)),
		slog.Uint64("failing", uint64(r.stats.Failed)),
		slog.Uint64("pending", uint64(r.stats.Pending)))
	return r.Output()
}

// RunID identifies the current run.
func (r *Reporter) RunID() string { return r.runID }

// Config returns the configuration the reporter was built with.
func (r *Reporter) Config() Config { return r.cfg }

// Theme returns the active theme.
func (r *Reporter) Theme() Theme { return r.theme }

// Depth is the number of groups currently open.
func (r *Reporter) Depth() uint { return r.depth }

// Stats returns the counters so far.
func (r *Reporter) Stats() result.Stats { return r.stats }

// Entries returns a copy of the structured lines logged so far.
func (r *Reporter) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Enter logs a group line at the current depth and opens the group.
func (r *Reporter) Enter(description string) {
	e := Entry{
		Kind:        EntryGroup,
		Depth:       r.depth,
		Path:        r.pathCopy(),
		Description: description,
	}
	r.entries = append(r.entries, e)
	r.log(r.theme.FormatEntry(e))
	r.depth++
	r.path = append(r.path, description)
}

// Leave closes the innermost group. It is a no-op at depth zero.
func (r *Reporter) Leave() {
	if r.depth == 0 {
		r.logger.Warn("leave without matching enter", slog.String("subsystem", "report"), slog.String("run_id", r.runID))
		return
	}
	r.depth--
	r.path = r.path[:len(r.path)-1]
}

// Record classifies an evaluated test and logs its line.
func (r *Reporter) Record(description string, res result.TestResult) {
	r.log(r.theme.FormatEntry(r.count(description, result.Classify(res), res.Message)))
}

// RecordPending logs a test declared without an implementation.
func (r *Reporter) RecordPending(description string) {
	r.log(r.theme.FormatEntry(r.count(description, result.OutcomePending, "")))
}

func (r *Reporter) count(description string, outcome result.Outcome, message string) Entry {
	r.stats.Record(outcome)
	e := Entry{
		Kind:        EntryTest,
		Depth:       r.depth,
		Path:        r.pathCopy(),
		Description: description,
		Outcome:     outcome,
	}
	if outcome == result.OutcomeFail {
		e.Message = message
	}
	r.entries = append(r.entries, e)
	return e
}

// Output returns the accumulated lines followed by the summary block.
func (r *Reporter) Output() string {
	var sb strings.Builder
	sb.WriteString(r.out.String())
	sb.WriteString("\n\n")
	sb.WriteString(r.Summary())
	return sb.String()
}

// Summary returns the "N passing / N failing / N pending" block.
func (r *Reporter) Summary() string {
	f := r.format
	return f.Concat(
		r.theme.Green(f.Concat(f.Uint(uint64(r.stats.Passed)), " passing")), "\n",
		r.theme.Red(f.Concat(f.Uint(uint64(r.stats.Failed)), " failing")), "\n",
		r.theme.Cyan(f.Concat(f.Uint(uint64(r.stats.Pending)), " pending")), "\n",
	)
}

func (r *Reporter) log(s string) {
	r.out.WriteString(s)
}

func (r *Reporter) pathCopy() []string {
	if len(r.path) == 0 {
		return nil
	}
	p := make([]string, len(r.path))
	copy(p, r.path)
	return p
}
