package daycell

import (
	"slices"

	"calpick/internal/dateutil"
)

// outOfRange reports whether day cannot be picked at all.
func outOfRange(day dateutil.Day, sel Selection, r Restriction) bool {
	if r.MaxDate != nil && day.After(*r.MaxDate) {
		return true
	}
	if r.MinDate != nil && day.Before(*r.MinDate) {
		return true
	}
	if slices.Contains(r.Disabled, day) {
		return true
	}
	return beforeMinDuration(day, sel, r.MinRangeDuration) ||
		afterMaxDuration(day, sel, r.MaxRangeDuration)
}

// Duration checks only look at days after an already chosen range start.
func durationApplies(day dateutil.Day, sel Selection) bool {
	return sel.AllowRange && sel.Start != nil && day.After(*sel.Start)
}

func beforeMinDuration(day dateutil.Day, sel Selection, minDur *RangeDuration) bool {
	if !durationApplies(day, sel) {
		return false
	}
	days, ok := minDur.For(*sel.Start)
	if !ok {
		return false
	}
	return sel.Start.AddDays(days).After(day)
}

func afterMaxDuration(day dateutil.Day, sel Selection, maxDur *RangeDuration) bool {
	if !durationApplies(day, sel) {
		return false
	}
	days, ok := maxDur.For(*sel.Start)
	if !ok {
		return false
	}
	return sel.Start.AddDays(days).Before(day)
}
