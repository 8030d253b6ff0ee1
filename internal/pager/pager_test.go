package pager

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/macchiato/pkg/report"
	"github.com/dkoosis/macchiato/pkg/result"
)

func sampleEntries() []report.Entry {
	r := report.New(report.Config{})
	r.Record("loose", result.Pass())
	r.Enter("Foo")
	r.Enter("with bar")
	r.Record("baz", result.Pass())
	r.Record("qux", result.Fail("Expected false to equal true"))
	r.Leave()
	r.Leave()
	r.Enter("Program")
	r.RecordPending("later")
	r.Leave()
	return r.Entries()
}

func TestSections_SameNameGroupsStaySeparate(t *testing.T) {
	r := report.New(report.Config{})
	r.Enter("Foo")
	r.Record("first", result.Pass())
	r.Leave()
	r.Enter("Foo")
	r.Record("second", result.Fail("boom"))
	r.Leave()

	sections := Sections(r.Entries(), report.PlainTheme())
	require.Len(t, sections, 2)
	assert.Equal(t, "Foo\n\tPass: first\n", sections[0].Body)
	assert.Equal(t, result.Stats{Passed: 1}, sections[0].Stats)
	assert.Equal(t, "Foo\n\tFail: second\n\t\tboom\n", sections[1].Body)
	assert.Equal(t, result.Stats{Failed: 1}, sections[1].Stats)
}

func TestSections(t *testing.T) {
	sections := Sections(sampleEntries(), report.PlainTheme())
	require.Len(t, sections, 3)

	assert.Equal(t, report.RootGroup, sections[0].Name)
	assert.Equal(t, "Pass: loose\n", sections[0].Body)

	assert.Equal(t, "Foo", sections[1].Name)
	assert.Equal(t, result.Stats{Passed: 1, Failed: 1}, sections[1].Stats)
	assert.Equal(t, "Foo\n\twith bar\n\t\tPass: baz\n\t\tFail: qux\n\t\t\tExpected false to equal true\n", sections[1].Body)

	assert.Equal(t, "Program\n\t----: later\n", sections[2].Body)
}

func TestModel_Navigation(t *testing.T) {
	m := tea.Model(newModel(Sections(sampleEntries(), report.PlainTheme()), "1 passing\n"))
	assert.Equal(t, "Loading report...", m.View())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.View(), "Pass: loose")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.(model).selected)
	assert.Contains(t, m.View(), "Fail: qux")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, m.(model).selected, "selection stops at the last group")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.(model).selected)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestStatusIcon(t *testing.T) {
	assert.Contains(t, statusIcon(result.Stats{Failed: 1}), "✗")
	assert.Contains(t, statusIcon(result.Stats{Passed: 1}), "✓")
	assert.Contains(t, statusIcon(result.Stats{}), "○")
}
