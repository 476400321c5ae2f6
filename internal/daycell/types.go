package daycell

import (
	"calpick/internal/dateutil"

	"github.com/charmbracelet/lipgloss"
)

// State names the visual variant a day resolved to.
type State int

const (
	StateNormal State = iota
	StateDisabled
	StateToday
	StateCustom
	StateSelected
	StateRangeStart
	StateRangeEnd
	StateRangeSingle
	StateInRange
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDisabled:
		return "disabled"
	case StateToday:
		return "today"
	case StateCustom:
		return "custom"
	case StateSelected:
		return "selected"
	case StateRangeStart:
		return "range-start"
	case StateRangeEnd:
		return "range-end"
	case StateRangeSingle:
		return "range-single"
	case StateInRange:
		return "in-range"
	}
	return "unknown"
}

// Selection is the host's current pick. In single mode only Start is read.
type Selection struct {
	Start      *dateutil.Day
	End        *dateutil.Day
	AllowRange bool
}

// DurationOverride is a per-start-date minimum or maximum range length.
type DurationOverride struct {
	Date dateutil.Day
	Days int
}

// RangeDuration is either a scalar day count or an ordered override list
// keyed by range start. A non-nil Overrides takes the place of Days.
type RangeDuration struct {
	Days      int
	Overrides []DurationOverride
}

// ScalarDuration returns a RangeDuration that applies to every start date.
func ScalarDuration(days int) *RangeDuration {
	return &RangeDuration{Days: days}
}

// OverrideDurations returns a RangeDuration that only applies to the listed
// start dates.
func OverrideDurations(overrides ...DurationOverride) *RangeDuration {
	if overrides == nil {
		overrides = []DurationOverride{}
	}
	return &RangeDuration{Overrides: overrides}
}

// For returns the duration that applies to a range starting at start. The
// first matching override wins; no match means no constraint.
func (r *RangeDuration) For(start dateutil.Day) (int, bool) {
	if r == nil {
		return 0, false
	}
	if r.Overrides != nil {
		for _, o := range r.Overrides {
			if o.Date.Equal(start) {
				return o.Days, true
			}
		}
		return 0, false
	}
	if r.Days <= 0 {
		return 0, false
	}
	return r.Days, true
}

// Restriction bounds which days can be picked. MinDate and MaxDate are
// themselves allowed.
type Restriction struct {
	MinDate  *dateutil.Day
	MaxDate  *dateutil.Day
	Disabled []dateutil.Day

	MinRangeDuration *RangeDuration
	MaxRangeDuration *RangeDuration
}

// CustomDateStyle decorates one specific day.
type CustomDateStyle struct {
	Date      dateutil.Day
	Container *lipgloss.Style
	Style     *lipgloss.Style
	Text      *lipgloss.Style
}

// Styles holds the named style fragments for every visual state.
type Styles struct {
	DayWrapper            lipgloss.Style
	DayButton             lipgloss.Style
	DayLabel              lipgloss.Style
	DisabledText          lipgloss.Style
	SelectedToday         lipgloss.Style
	SelectedDay           lipgloss.Style
	SelectedDayBackground lipgloss.Style
	SelectedDayLabel      lipgloss.Style
	StartDayWrapper       lipgloss.Style
	EndDayWrapper         lipgloss.Style
	InRangeDay            lipgloss.Style
	TodayIndicator        lipgloss.Style
	Badge                 lipgloss.Style
	BadgeText             lipgloss.Style
}

// Overrides are optional per-call styles layered over the named fragments.
type Overrides struct {
	TextStyle               *lipgloss.Style
	TodayTextStyle          *lipgloss.Style
	SelectedDayStyle        *lipgloss.Style
	SelectedRangeStyle      *lipgloss.Style
	SelectedRangeStartStyle *lipgloss.Style
	SelectedRangeEndStyle   *lipgloss.Style
}

// Badge is an optional counter shown on the cell when Count > 0.
type Badge struct {
	Count     int
	Style     *lipgloss.Style
	TextStyle *lipgloss.Style
}

// Input is everything the resolver needs for one cell.
type Input struct {
	Date             dateutil.Day
	Today            dateutil.Day // zero means the current local day
	Selection        Selection
	Restriction      Restriction
	CustomStyles     []CustomDateStyle
	Styles           Styles
	Overrides        Overrides
	Badge            Badge
	EnableDateChange bool
}

// BadgeView is the resolved badge layer.
type BadgeView struct {
	Count int
	Style []lipgloss.Style
	Text  []lipgloss.Style
}

// Decision is the resolved render plan for one cell. Each style slice is
// meant to be merged left to right with later entries winning.
type Decision struct {
	Date               dateutil.Day
	Day                int
	State              State
	Selectable         bool
	Interactive        bool
	ShowTodayIndicator bool
	TodayIndicator     lipgloss.Style
	Container          []lipgloss.Style
	Cell               []lipgloss.Style
	Label              []lipgloss.Style
	Badge              *BadgeView
}
