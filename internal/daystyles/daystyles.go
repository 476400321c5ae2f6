package daystyles

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"calpick/internal/dateutil"
	"calpick/internal/daycell"
	"calpick/internal/logs"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// DayStyles holds per-day decorations and restrictions read from a styles file,
// plus the style overrides applied to every cell.
type DayStyles struct {
	Disabled         []dateutil.Day
	MinRangeDuration *daycell.RangeDuration
	MaxRangeDuration *daycell.RangeDuration
	Custom           []daycell.CustomDateStyle
	Overrides        daycell.Overrides
	BadgeStyle       *lipgloss.Style
	BadgeTextStyle   *lipgloss.Style
}

// StyleSpec is the YAML form of a lipgloss style.
type StyleSpec struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Underline  bool   `yaml:"underline"`
	Faint      bool   `yaml:"faint"`
	Reverse    bool   `yaml:"reverse"`
}

// Style converts the spec, returning nil for a nil spec.
func (s *StyleSpec) Style() *lipgloss.Style {
	if s == nil {
		return nil
	}
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return &st
}

type customSpec struct {
	Date      string     `yaml:"date"`
	Container *StyleSpec `yaml:"container"`
	Style     *StyleSpec `yaml:"style"`
	Text      *StyleSpec `yaml:"text"`
}

type overridesSpec struct {
	Text        *StyleSpec `yaml:"text"`
	TodayText   *StyleSpec `yaml:"today_text"`
	SelectedDay *StyleSpec `yaml:"selected_day"`
	Range       *StyleSpec `yaml:"range"`
	RangeStart  *StyleSpec `yaml:"range_start"`
	RangeEnd    *StyleSpec `yaml:"range_end"`
}

func (o overridesSpec) build() daycell.Overrides {
	return daycell.Overrides{
		TextStyle:               o.Text.Style(),
		TodayTextStyle:          o.TodayText.Style(),
		SelectedDayStyle:        o.SelectedDay.Style(),
		SelectedRangeStyle:      o.Range.Style(),
		SelectedRangeStartStyle: o.RangeStart.Style(),
		SelectedRangeEndStyle:   o.RangeEnd.Style(),
	}
}

type badgeSpec struct {
	Style *StyleSpec `yaml:"style"`
	Text  *StyleSpec `yaml:"text"`
}

type overrideSpec struct {
	Date     string `yaml:"date"`
	Duration int    `yaml:"duration"`
}

// durationSpec accepts either a day count or a list of per-start-date
// overrides. Anything else is remembered as invalid instead of failing the
// whole file.
type durationSpec struct {
	scalar    *int
	overrides []overrideSpec
	invalid   error
}

func (d *durationSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		return nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			d.invalid = fmt.Errorf("line %d: duration %q is not a number", node.Line, node.Value)
			return nil
		}
		d.scalar = &n
	case yaml.SequenceNode:
		var list []overrideSpec
		if err := node.Decode(&list); err != nil {
			d.invalid = fmt.Errorf("line %d: %w", node.Line, err)
			return nil
		}
		if list == nil {
			list = []overrideSpec{}
		}
		d.overrides = list
	default:
		d.invalid = fmt.Errorf("line %d: duration must be a number or a list", node.Line)
	}
	return nil
}

type fileSpec struct {
	DisabledDates    []string      `yaml:"disabled_dates"`
	MinRangeDuration durationSpec  `yaml:"min_range_duration"`
	MaxRangeDuration durationSpec  `yaml:"max_range_duration"`
	CustomDates      []customSpec  `yaml:"custom_dates"`
	Overrides        overridesSpec `yaml:"overrides"`
	Badge            badgeSpec     `yaml:"badge"`
}

// Load reads and parses a styles file.
func Load(path string) (DayStyles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DayStyles{}, fmt.Errorf("read styles file: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return DayStyles{}, fmt.Errorf("parse styles file %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes a styles document. Entries with bad dates or durations are
// logged and skipped; only a structurally broken document is an error.
func Parse(data []byte) (DayStyles, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return DayStyles{}, err
	}

	var ds DayStyles

	for _, raw := range spec.DisabledDates {
		day, err := dateutil.Parse(raw)
		if err != nil {
			logs.Logger.Printf("Skipping disabled date: %v", err)
			continue
		}
		ds.Disabled = append(ds.Disabled, day)
	}

	ds.MinRangeDuration = spec.MinRangeDuration.build("min_range_duration")
	ds.MaxRangeDuration = spec.MaxRangeDuration.build("max_range_duration")

	for _, c := range spec.CustomDates {
		day, err := dateutil.Parse(c.Date)
		if err != nil {
			logs.Logger.Printf("Skipping custom date style: %v", err)
			continue
		}
		ds.Custom = append(ds.Custom, daycell.CustomDateStyle{
			Date:      day,
			Container: c.Container.Style(),
			Style:     c.Style.Style(),
			Text:      c.Text.Style(),
		})
	}

	ds.Overrides = spec.Overrides.build()
	ds.BadgeStyle = spec.Badge.Style.Style()
	ds.BadgeTextStyle = spec.Badge.Text.Style()

	return ds, nil
}

func (d durationSpec) build(field string) *daycell.RangeDuration {
	if d.invalid != nil {
		logs.Logger.Printf("Ignoring %s: %v", field, d.invalid)
		return nil
	}
	if d.scalar != nil {
		return daycell.ScalarDuration(*d.scalar)
	}
	if d.overrides == nil {
		return nil
	}

	overrides := make([]daycell.DurationOverride, 0, len(d.overrides))
	for _, o := range d.overrides {
		day, err := dateutil.Parse(o.Date)
		if err != nil {
			logs.Logger.Printf("Skipping %s override: %v", field, err)
			continue
		}
		overrides = append(overrides, daycell.DurationOverride{Date: day, Days: o.Duration})
	}
	return daycell.OverrideDurations(overrides...)
}

// Restrict layers the file's disabled dates and durations over base.
// Durations from the file replace those in base when present.
func (ds DayStyles) Restrict(base daycell.Restriction) daycell.Restriction {
	r := base
	r.Disabled = append(slices.Clone(base.Disabled), ds.Disabled...)
	if ds.MinRangeDuration != nil {
		r.MinRangeDuration = ds.MinRangeDuration
	}
	if ds.MaxRangeDuration != nil {
		r.MaxRangeDuration = ds.MaxRangeDuration
	}
	return r
}
