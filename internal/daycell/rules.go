package daycell

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// layers is the state-dependent part of a cell, built up as rules fold over it.
type layers struct {
	state State
	cell  []lipgloss.Style
	label []lipgloss.Style
	prop  []lipgloss.Style
}

// delta is what a matching rule contributes. A nil slice leaves the
// accumulated layer untouched.
type delta struct {
	state State
	cell  []lipgloss.Style
	label []lipgloss.Style
	prop  []lipgloss.Style
}

type cellContext struct {
	in      Input
	isToday bool
	custom  *CustomDateStyle
	isStart bool
	isEnd   bool
}

type rule struct {
	name  string
	apply func(c cellContext, acc layers) (delta, bool)
}

// rules run in this order and later matches replace earlier layers.
var rules = []rule{
	{"today", todayRule},
	{"custom", customRule},
	{"single-selected", singleSelectedRule},
	{"range-start", rangeStartRule},
	{"range-end", rangeEndRule},
	{"range-single-day", rangeSingleDayRule},
	{"in-range", inRangeRule},
	{"range-start-open", rangeStartOpenRule},
}

// RuleNames returns the style rules in evaluation order.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

func fold(c cellContext) layers {
	acc := layers{
		state: StateNormal,
		cell:  []lipgloss.Style{c.in.Styles.DayButton},
	}
	for _, r := range rules {
		d, ok := r.apply(c, acc)
		if !ok {
			continue
		}
		acc.state = d.state
		if d.cell != nil {
			acc.cell = d.cell
		}
		if d.label != nil {
			acc.label = d.label
		}
		if d.prop != nil {
			acc.prop = d.prop
		}
	}
	return acc
}

func todayRule(c cellContext, _ layers) (delta, bool) {
	if !c.isToday {
		return delta{}, false
	}
	label := c.in.Styles.SelectedDayLabel
	if c.in.Overrides.TodayTextStyle != nil {
		label = *c.in.Overrides.TodayTextStyle
	}
	return delta{
		state: StateToday,
		cell:  []lipgloss.Style{c.in.Styles.SelectedToday},
		label: []lipgloss.Style{label},
	}, true
}

// customRule keeps today's cell style underneath the custom one rather than
// dropping it.
func customRule(c cellContext, acc layers) (delta, bool) {
	if c.custom == nil {
		return delta{}, false
	}
	d := delta{state: StateCustom}
	if c.isToday && c.custom.Style != nil {
		d.cell = append(slices.Clone(acc.cell), *c.custom.Style)
	}
	return d, true
}

func singleSelectedRule(c cellContext, _ layers) (delta, bool) {
	sel := c.in.Selection
	if sel.AllowRange || sel.Start == nil || !c.isStart {
		return delta{}, false
	}
	prop := c.in.Styles.SelectedDayBackground
	if c.in.Overrides.SelectedDayStyle != nil {
		prop = *c.in.Overrides.SelectedDayStyle
	}
	return delta{
		state: StateSelected,
		cell:  []lipgloss.Style{c.in.Styles.SelectedDay},
		label: []lipgloss.Style{c.in.Styles.SelectedDayLabel},
		prop:  []lipgloss.Style{prop},
	}, true
}

func closedRange(c cellContext) bool {
	sel := c.in.Selection
	return sel.AllowRange && sel.Start != nil && sel.End != nil
}

func rangeStartRule(c cellContext, _ layers) (delta, bool) {
	if !closedRange(c) || !c.isStart {
		return delta{}, false
	}
	return startDelta(c), true
}

func rangeEndRule(c cellContext, _ layers) (delta, bool) {
	if !closedRange(c) || !c.isEnd {
		return delta{}, false
	}
	o := c.in.Overrides
	return delta{
		state: StateRangeEnd,
		cell:  withOverrides(c.in.Styles.EndDayWrapper, o.SelectedRangeStyle, o.SelectedRangeEndStyle),
		label: []lipgloss.Style{c.in.Styles.SelectedDayLabel},
	}, true
}

func rangeSingleDayRule(c cellContext, _ layers) (delta, bool) {
	if !closedRange(c) || !c.isStart || !c.isEnd {
		return delta{}, false
	}
	s := c.in.Styles
	return delta{
		state: StateRangeSingle,
		cell:  withOverrides(s.SelectedDay, &s.SelectedDayBackground, c.in.Overrides.SelectedRangeStyle),
		label: []lipgloss.Style{s.SelectedDayLabel},
	}, true
}

func inRangeRule(c cellContext, _ layers) (delta, bool) {
	sel := c.in.Selection
	if !closedRange(c) || !c.in.Date.Between(*sel.Start, *sel.End) {
		return delta{}, false
	}
	return delta{
		state: StateInRange,
		cell:  withOverrides(c.in.Styles.InRangeDay, c.in.Overrides.SelectedRangeStyle),
		label: []lipgloss.Style{c.in.Styles.SelectedDayLabel},
	}, true
}

func rangeStartOpenRule(c cellContext, _ layers) (delta, bool) {
	sel := c.in.Selection
	if !sel.AllowRange || sel.Start == nil || sel.End != nil || !c.isStart {
		return delta{}, false
	}
	return startDelta(c), true
}

func startDelta(c cellContext) delta {
	o := c.in.Overrides
	return delta{
		state: StateRangeStart,
		cell:  withOverrides(c.in.Styles.StartDayWrapper, o.SelectedRangeStyle, o.SelectedRangeStartStyle),
		label: []lipgloss.Style{c.in.Styles.SelectedDayLabel},
	}
}

// withOverrides returns base followed by every non-nil override.
func withOverrides(base lipgloss.Style, overrides ...*lipgloss.Style) []lipgloss.Style {
	out := []lipgloss.Style{base}
	for _, o := range overrides {
		if o != nil {
			out = append(out, *o)
		}
	}
	return out
}
