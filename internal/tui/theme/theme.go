package theme

import (
	"calpick/internal/daycell"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Color palette — ANSI 0-15 + one 256-color accent
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")
	TextDark   = lipgloss.Color("0")

	Primary   = lipgloss.Color("4")   // blue
	Secondary = lipgloss.Color("6")   // cyan
	Accent    = lipgloss.Color("5")   // magenta
	Success   = lipgloss.Color("2")   // green
	Warning   = lipgloss.Color("3")   // yellow
	Danger    = lipgloss.Color("1")   // red
	Surface   = lipgloss.Color("236") // dark bg
	Border    = lipgloss.Color("8")   // dim
)

// CellWidth is the rendered width of one day column.
const CellWidth = 5

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted    = lipgloss.NewStyle().Foreground(TextMuted)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)
)

// ---------------------------------------------------------------------------
// Picker chrome
// ---------------------------------------------------------------------------

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	DayHeader = lipgloss.NewStyle().Bold(true).Foreground(TextMuted).Width(CellWidth).Align(lipgloss.Center)
	EmptyCell = lipgloss.NewStyle().Width(CellWidth)

	// Cursor outlines the cell under the cursor without hiding its state.
	Cursor = lipgloss.NewStyle().Reverse(true)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)
)

// DefaultStyles returns the named day-cell fragments used by the picker.
func DefaultStyles() daycell.Styles {
	return daycell.Styles{
		DayWrapper:            lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center),
		DayButton:             lipgloss.NewStyle(),
		DayLabel:              lipgloss.NewStyle().Foreground(Text),
		DisabledText:          lipgloss.NewStyle().Foreground(TextMuted).Faint(true),
		SelectedToday:         lipgloss.NewStyle().Bold(true),
		SelectedDay:           lipgloss.NewStyle().Bold(true),
		SelectedDayBackground: lipgloss.NewStyle().Background(Primary),
		SelectedDayLabel:      lipgloss.NewStyle().Foreground(TextBright),
		StartDayWrapper:       lipgloss.NewStyle().Bold(true).Background(Primary),
		EndDayWrapper:         lipgloss.NewStyle().Bold(true).Background(Primary),
		InRangeDay:            lipgloss.NewStyle().Background(Surface),
		TodayIndicator:        lipgloss.NewStyle().Underline(true),
		Badge:                 lipgloss.NewStyle().Foreground(Warning),
		BadgeText:             lipgloss.NewStyle().Bold(true),
	}
}
