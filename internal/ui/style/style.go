// Package style holds the colors, icons and lipgloss styles shared by the
// log handler and the command reports.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#A0A7B8")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Report styles.
var (
	Key   = lipgloss.NewStyle().Foreground(Slate)
	Value = lipgloss.NewStyle()
	Good  = lipgloss.NewStyle().Foreground(Green)
	Stale = lipgloss.NewStyle().Foreground(Yellow)
	Bad   = lipgloss.NewStyle().Foreground(Red)
)
