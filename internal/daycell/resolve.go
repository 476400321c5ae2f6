// Package daycell decides how a single calendar day renders inside a picker:
// whether it can be picked at all, and which visual state wins when several
// (today, custom style, selection, range) apply to the same day.
package daycell

import (
	"calpick/internal/dateutil"

	"github.com/charmbracelet/lipgloss"
)

// Resolve computes the render plan for in.Date. It never fails; missing
// optional inputs mean "no restriction" and "no override".
func Resolve(in Input) Decision {
	day := in.Date
	today := in.Today
	if today.IsZero() {
		today = dateutil.Today()
	}

	if outOfRange(day, in.Selection, in.Restriction) {
		return Decision{
			Date:      day,
			Day:       day.Day,
			State:     StateDisabled,
			Container: []lipgloss.Style{in.Styles.DayWrapper},
			Label:     withLeading(in.Overrides.TextStyle, in.Styles.DisabledText),
		}
	}

	c := cellContext{
		in:      in,
		isToday: day.Equal(today),
		custom:  findCustom(day, in.CustomStyles),
	}
	if in.Selection.Start != nil {
		c.isStart = day.Equal(*in.Selection.Start)
	}
	if in.Selection.End != nil {
		c.isEnd = day.Equal(*in.Selection.End)
	}

	acc := fold(c)

	d := Decision{
		Date:               day,
		Day:                day.Day,
		State:              acc.state,
		Selectable:         true,
		Interactive:        in.EnableDateChange,
		ShowTodayIndicator: c.isToday,
		Container:          []lipgloss.Style{in.Styles.DayWrapper},
		Label:              []lipgloss.Style{in.Styles.DayLabel},
	}

	if c.isToday {
		d.TodayIndicator = in.Styles.TodayIndicator
	}

	if c.custom != nil {
		if c.custom.Container != nil {
			d.Container = append(d.Container, *c.custom.Container)
		}
		if c.custom.Style != nil {
			d.Cell = append(d.Cell, *c.custom.Style)
		}
	}
	d.Cell = append(d.Cell, acc.cell...)
	d.Cell = append(d.Cell, acc.prop...)

	if in.Overrides.TextStyle != nil {
		d.Label = append(d.Label, *in.Overrides.TextStyle)
	}
	if c.custom != nil && c.custom.Text != nil {
		d.Label = append(d.Label, *c.custom.Text)
	}
	d.Label = append(d.Label, acc.label...)

	if in.Badge.Count > 0 {
		d.Badge = &BadgeView{
			Count: in.Badge.Count,
			Style: withOverrides(in.Styles.Badge, in.Badge.Style),
			Text:  withOverrides(in.Styles.BadgeText, in.Badge.TextStyle),
		}
	}

	return d
}

// findCustom returns the first entry for day, scanning in order.
func findCustom(day dateutil.Day, styles []CustomDateStyle) *CustomDateStyle {
	for i := range styles {
		if styles[i].Date.Equal(day) {
			return &styles[i]
		}
	}
	return nil
}

func withLeading(first *lipgloss.Style, rest ...lipgloss.Style) []lipgloss.Style {
	if first == nil {
		return rest
	}
	return append([]lipgloss.Style{*first}, rest...)
}
