package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Out receives task output.
var Out io.Writer = os.Stdout

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// PrintHeader prints a section header.
func PrintHeader(title string) {
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, headerStyle.Render("=== "+title+" ==="))
	fmt.Fprintln(Out)
}

// PrintBanner prints a full-width title between rules.
func PrintBanner(title string, width int) {
	rule := strings.Repeat("=", width)
	padding := max(0, (width-lipgloss.Width(title))/2)
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, rule)
	fmt.Fprintln(Out, strings.Repeat(" ", padding)+headerStyle.Render(title))
	fmt.Fprintln(Out, rule)
	fmt.Fprintln(Out)
}

// PrintSuccess prints a success line.
func PrintSuccess(msg string) { fmt.Fprintln(Out, successStyle.Render("✅ "+msg)) }

// PrintWarning prints a warning line.
func PrintWarning(msg string) { fmt.Fprintln(Out, warningStyle.Render("⚠️  "+msg)) }

// PrintError prints an error line.
func PrintError(msg string) { fmt.Fprintln(Out, errorStyle.Render("❌ "+msg)) }
