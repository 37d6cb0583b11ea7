package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // titles, focused borders
	ColorHighlight = "205" // known letters, selected list
	ColorDanger    = "196" // errors
	ColorMuted     = "241" // hints, placeholders
	ColorText      = "252"
	ColorWarning   = "208"
)

// Styles contains the style definitions of every panel.
var Styles = struct {
	Title    lipgloss.Style
	List     lipgloss.Style
	Label    lipgloss.Style
	Cell     lipgloss.Style
	CellOn   lipgloss.Style
	Panel    lipgloss.Style
	Word     lipgloss.Style
	Index    lipgloss.Style
	Letter   lipgloss.Style
	Count    lipgloss.Style
	Muted    lipgloss.Style
	Empty    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	PageDot  lipgloss.Style
	PageDim  lipgloss.Style
	Sections lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	List: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Width(10),
	Cell: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Width(1).
		Align(lipgloss.Center),
	CellOn: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Width(1).
		Align(lipgloss.Center),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Word: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Index: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Width(5).
		Align(lipgloss.Right),
	Letter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Count: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	PageDot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	PageDim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Sections: lipgloss.NewStyle().
		MarginTop(1),
}
