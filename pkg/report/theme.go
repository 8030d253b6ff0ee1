package report

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/dkoosis/macchiato/pkg/result"
)

// Theme holds the styles and labels used for report lines.
type Theme struct {
	Name    string
	Pass    termenv.Style
	Fail    termenv.Style
	Pending termenv.Style
	Labels  ThemeLabels

	plain bool
}

// ThemeLabels are the status words written in front of test descriptions.
type ThemeLabels struct {
	Pass    string
	Fail    string
	Pending string
}

func defaultLabels() ThemeLabels {
	return ThemeLabels{Pass: "Pass", Fail: "Fail", Pending: "----"}
}

// ansiStyle is a bold style in one of the 16 base colors. It always emits
// SGR sequences, whatever the process's stdout is, and leaves the wrapped
// text byte-for-byte intact. Terminal detection belongs to the caller (see
// internal/config).
func ansiStyle(color string) termenv.Style {
	return termenv.ANSI.String().Foreground(termenv.ANSI.Color(color)).Bold()
}

// ColorTheme returns bold green/red/cyan styles for pass/fail/pending.
func ColorTheme() Theme {
	return Theme{
		Name:    "color",
		Pass:    ansiStyle("2"), // green
		Fail:    ansiStyle("1"), // red
		Pending: ansiStyle("6"), // cyan
		Labels:  defaultLabels(),
	}
}

// PlainTheme returns a theme whose wrap helpers are identity functions.
func PlainTheme() Theme {
	return Theme{
		Name:   "plain",
		Labels: defaultLabels(),
		plain:  true,
	}
}

// ThemeFor picks ColorTheme or PlainTheme from the color toggle.
func ThemeFor(useColor bool) Theme {
	if useColor {
		return ColorTheme()
	}
	return PlainTheme()
}

func (t Theme) wrap(style termenv.Style, s string) string {
	if t.plain {
		return s
	}
	return style.Styled(s)
}

// Green wraps s in the pass style.
func (t Theme) Green(s string) string { return t.wrap(t.Pass, s) }

// Red wraps s in the fail style.
func (t Theme) Red(s string) string { return t.wrap(t.Fail, s) }

// Cyan wraps s in the pending style.
func (t Theme) Cyan(s string) string { return t.wrap(t.Pending, s) }

// FormatEntry renders one report line (plus failure message lines) for e.
// Test lines sit at e.Depth; failure message lines one level deeper.
func (t Theme) FormatEntry(e Entry) string {
	var sb strings.Builder
	sb.WriteString(indent(e.Depth))
	if e.Kind == EntryGroup {
		sb.WriteString(e.Description)
		sb.WriteString("\n")
		return sb.String()
	}

	switch e.Outcome {
	case result.OutcomePending:
		sb.WriteString(t.Cyan(t.Labels.Pending + ": " + e.Description))
		sb.WriteString("\n")
		return sb.String()
	case result.OutcomePass:
		sb.WriteString(t.Green(t.Labels.Pass))
	default:
		sb.WriteString(t.Red(t.Labels.Fail))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Description)
	sb.WriteString("\n")
	if e.Outcome == result.OutcomeFail && e.Message != "" {
		for _, line := range strings.Split(e.Message, "\n") {
			sb.WriteString(indent(e.Depth + 1))
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func indent(depth uint) string {
	return strings.Repeat("\t", int(depth))
}
