package picker

import (
	"strings"

	"calpick/internal/dateutil"
	"calpick/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var weekdayHeaders = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// RenderMonth draws the month containing month as a Sunday-first grid.
// cell renders each day; leading and trailing blanks use theme.EmptyCell.
func RenderMonth(month dateutil.Day, cell func(dateutil.Day) string) string {
	first := month.FirstOfMonth()
	var s strings.Builder

	header := theme.Title.Render(first.Time().Format("January 2006"))
	s.WriteString(lipgloss.PlaceHorizontal(7*theme.CellWidth, lipgloss.Center, header))
	s.WriteString("\n\n")

	for _, d := range weekdayHeaders {
		s.WriteString(theme.DayHeader.Render(d))
	}
	s.WriteString("\n")

	daysInMonth := first.DaysInMonth()
	currentDay := 1 - int(first.Weekday())

	for week := 0; week < 6; week++ {
		for weekday := 0; weekday < 7; weekday++ {
			if currentDay < 1 || currentDay > daysInMonth {
				s.WriteString(theme.EmptyCell.Render(""))
			} else {
				s.WriteString(cell(dateutil.New(first.Year, first.Month, currentDay)))
			}
			currentDay++
		}
		s.WriteString("\n")

		if currentDay > daysInMonth {
			break
		}
	}

	return s.String()
}
