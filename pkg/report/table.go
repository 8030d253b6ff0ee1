package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/macchiato/pkg/result"
)

// RootGroup labels tests declared outside any group.
const RootGroup = "(root)"

const defaultGroupWidth = 40

// TableOptions tune the breakdown table.
type TableOptions struct {
	Title      string
	GroupWidth int // display width limit for group names; 0 means default
}

// GroupStats is the tally for one top-level group.
type GroupStats struct {
	Group string
	Stats result.Stats
}

// Breakdown tallies test entries by their outermost group, in order of
// appearance. Top-level groups sharing a description stay separate rows.
func Breakdown(entries []Entry) []GroupStats {
	groups, _ := Partition(entries)
	return groups
}

// Partition assigns every entry to a top-level group. owner[i] is the index
// in groups of the group entries[i] belongs to. Each depth-0 group line
// opens a new group; tests outside any group share one RootGroup.
func Partition(entries []Entry) (groups []GroupStats, owner []int) {
	owner = make([]int, len(entries))
	current, root := -1, -1
	for i, e := range entries {
		var g int
		switch {
		case e.Kind == EntryGroup && e.Depth == 0:
			g = len(groups)
			groups = append(groups, GroupStats{Group: e.Description})
			current = g
		case len(e.Path) > 0 && current >= 0:
			g = current
		default:
			if root < 0 {
				root = len(groups)
				groups = append(groups, GroupStats{Group: RootGroup})
			}
			g = root
		}
		owner[i] = g
		if e.Kind == EntryTest {
			groups[g].Stats.Record(e.Outcome)
		}
	}
	return groups, owner
}

// Table renders the per-group breakdown as a plain text table.
func Table(entries []Entry, opts TableOptions) string {
	width := opts.GroupWidth
	if width <= 0 {
		width = defaultGroupWidth
	}
	title := cases.Title(language.English)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	if opts.Title != "" {
		t.SetTitle(opts.Title)
	}
	t.AppendHeader(table.Row{
		title.String("group"), title.String("passing"), title.String("failing"), title.String("pending"),
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	var total result.Stats
	for _, g := range Breakdown(entries) {
		total.Merge(g.Stats)
		t.AppendRow(table.Row{
			runewidth.Truncate(g.Group, width, "…"),
			uintCell(g.Stats.Passed),
			uintCell(g.Stats.Failed),
			uintCell(g.Stats.Pending),
		})
	}
	t.AppendFooter(table.Row{
		title.String("total"), uintCell(total.Passed), uintCell(total.Failed), uintCell(total.Pending),
	})
	return t.Render() + "\n"
}

func uintCell(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
