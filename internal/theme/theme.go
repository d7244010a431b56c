package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/project-board/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps overlay panels such as help and history.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ColumnStyle frames a board column.
var ColumnStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// DroppableColumnStyle frames a column that accepts the current drag.
var DroppableColumnStyle = ColumnStyle.
	BorderStyle(lipgloss.ThickBorder()).
	BorderForeground(ColorYellow)

// CardStyle is the base style for a project card.
var CardStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedCardStyle highlights the card under the cursor.
var SelectedCardStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// DraggedCardStyle marks the card being carried.
var DraggedCardStyle = SelectedCardStyle.
	Foreground(ColorYellow).
	BorderForeground(ColorYellow)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// HelpKeyStyle renders a key or command name in help listings.
var HelpKeyStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// DimmedStyle is used for secondary card lines.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// AlertStyle frames blocking error messages.
var AlertStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed).
	Padding(1, 2).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorRed)

// StatusStyle returns a color-coded style for the given project status.
func StatusStyle(status model.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.StatusActive:
		return base.Foreground(ColorBlue)
	case model.StatusFinished:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// OperationStyle returns a color-coded style for a journal operation.
func OperationStyle(op model.ChangeOperation) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch op {
	case model.ChangeOperationCreate:
		return base.Foreground(ColorMagenta)
	case model.ChangeOperationMove:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}
