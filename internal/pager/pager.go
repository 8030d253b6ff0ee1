// Package pager shows a finished report in a two-pane terminal view: the
// top-level groups on the left, the selected group's lines on the right.
package pager

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/macchiato/pkg/report"
	"github.com/dkoosis/macchiato/pkg/result"
)

// Section is one top-level group of the report.
type Section struct {
	Name  string
	Stats result.Stats
	Body  string
}

// Sections splits entries by top-level group, in order of appearance,
// rendering each group's lines with theme.
func Sections(entries []report.Entry, theme report.Theme) []Section {
	groups, owner := report.Partition(entries)
	sections := make([]Section, len(groups))
	bodies := make([]strings.Builder, len(groups))
	for i, g := range groups {
		sections[i] = Section{Name: g.Group, Stats: g.Stats}
	}
	for i, e := range entries {
		bodies[owner[i]].WriteString(theme.FormatEntry(e))
	}
	for i := range sections {
		sections[i].Body = bodies[i].String()
	}
	return sections
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	listStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	detailStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Run opens the pager and blocks until the user quits or ctx is done.
func Run(ctx context.Context, sections []Section, summary string) error {
	program := tea.NewProgram(newModel(sections, summary), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	sections    []Section
	summary     string
	selected    int
	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

func newModel(sections []Section, summary string) model {
	vp := viewport.New(0, 0)
	vp.SetContent("No groups in this run")
	return model{sections: sections, summary: summary, viewport: vp}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.sections)-1 {
				m.selected++
				m.refreshViewport()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 1
		m.viewport.Width = max(m.detailWidth-4, 1)
		m.viewport.Height = max(m.height-8, 1)
		m.ready = true
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) calculateListWidth() int {
	width := 20
	for _, s := range m.sections {
		// "✗ name (p/f/n)"
		if w := lipgloss.Width(s.Name) + 16; w > width {
			width = w
		}
	}
	return width
}

func (m *model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.sections) {
		return
	}
	m.viewport.SetContent(m.sections[m.selected].Body)
	m.viewport.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "Loading report..."
	}

	title := titleStyle.Render("macchiato report")

	var lines []string
	for i, s := range m.sections {
		line := fmt.Sprintf("%s %s (%d/%d/%d)", statusIcon(s.Stats), s.Name, s.Stats.Passed, s.Stats.Failed, s.Stats.Pending)
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	list := listStyle.Width(m.listWidth).Render(strings.Join(lines, "\n"))
	detail := detailStyle.Width(m.detailWidth).Render(m.viewport.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	help := helpStyle.Render("↑/↓ group • pgup/pgdn scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, strings.TrimRight(m.summary, "\n"), help)
}

func statusIcon(s result.Stats) string {
	switch s.Status() {
	case "fail":
		return failStyle.Render("✗")
	case "pass":
		return passStyle.Render("✓")
	default:
		return pendingStyle.Render("○")
	}
}
