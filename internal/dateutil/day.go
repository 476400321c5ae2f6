package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical text form of a Day.
const Layout = "2006-01-02"

// Day is a calendar day with no time-of-day component. The zero value is
// treated as "unset" by callers.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the normalized Day for the given triple, so Jan 32 becomes Feb 1.
func New(year int, month time.Month, day int) Day {
	return Of(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// Of returns the calendar day of t in t's location.
func Of(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current local day.
func Today() Day {
	return Of(time.Now())
}

// Ptr returns a pointer to a copy of d.
func Ptr(d Day) *Day {
	return &d
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Day, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return Of(t), nil
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns local midnight of d.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Day) String() string {
	return d.Time().Format(Layout)
}

// Equal reports whether d and o are the same calendar day.
func (d Day) Equal(o Day) bool {
	return d.compare(o) == 0
}

// Before reports whether d is strictly before o.
func (d Day) Before(o Day) bool {
	return d.compare(o) < 0
}

// After reports whether d is strictly after o.
func (d Day) After(o Day) bool {
	return d.compare(o) > 0
}

// Between reports whether d lies strictly between start and end. Both
// endpoints are excluded, and an inverted range contains nothing.
func (d Day) Between(start, end Day) bool {
	return d.After(start) && d.Before(end)
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return New(d.Year, d.Month, d.Day+n)
}

// FirstOfMonth returns the first day of d's month.
func (d Day) FirstOfMonth() Day {
	return Day{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth returns the number of days in d's month.
func (d Day) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Day) compare(o Day) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
