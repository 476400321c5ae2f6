package picker

import (
	"strings"
	"testing"
	"time"

	"calpick/internal/badges"
	"calpick/internal/dateutil"
	"calpick/internal/daycell"
	"calpick/internal/tui/messages"
	"calpick/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var today = dateutil.New(2026, time.October, 19)

func oct(d int) dateutil.Day {
	return dateutil.New(2026, time.October, d)
}

func newModel(sel daycell.Selection, r daycell.Restriction) Model {
	return New(Options{
		Selection:        sel,
		Restriction:      r,
		Styles:           theme.DefaultStyles(),
		EnableDateChange: true,
		Today:            today,
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		m = updated.(Model)
	}
	return m
}

func TestNew_CursorStartsOnSelection(t *testing.T) {
	m := newModel(daycell.Selection{Start: dateutil.Ptr(oct(5))}, daycell.Restriction{})
	if m.Cursor() != oct(5) {
		t.Errorf("expected cursor on start, got %s", m.Cursor())
	}

	m = newModel(daycell.Selection{}, daycell.Restriction{})
	if m.Cursor() != today {
		t.Errorf("expected cursor on today, got %s", m.Cursor())
	}
}

func TestNavigation(t *testing.T) {
	m := newModel(daycell.Selection{}, daycell.Restriction{})

	m = send(t, m, "l", "l", "j")
	if m.Cursor() != oct(28) {
		t.Errorf("expected Oct 28, got %s", m.Cursor())
	}

	m = send(t, m, "j")
	if m.Cursor() != dateutil.New(2026, time.November, 4) {
		t.Errorf("expected Nov 4, got %s", m.Cursor())
	}
	if m.ViewMonth() != dateutil.New(2026, time.November, 1) {
		t.Errorf("expected view to follow cursor into November, got %s", m.ViewMonth())
	}

	m = send(t, m, "t")
	if m.Cursor() != today || m.ViewMonth() != oct(1) {
		t.Errorf("expected today in October, got %s / %s", m.Cursor(), m.ViewMonth())
	}
}

func TestShiftMonth_ClampsDay(t *testing.T) {
	m := newModel(daycell.Selection{Start: dateutil.Ptr(dateutil.New(2026, time.January, 31))}, daycell.Restriction{})

	m = send(t, m, "L")
	if m.Cursor() != dateutil.New(2026, time.February, 28) {
		t.Errorf("expected Feb 28, got %s", m.Cursor())
	}

	m = send(t, m, "H", "H")
	if m.ViewMonth() != dateutil.New(2025, time.December, 1) {
		t.Errorf("expected December 2025, got %s", m.ViewMonth())
	}
}

func TestPress_SingleMode(t *testing.T) {
	m := newModel(daycell.Selection{}, daycell.Restriction{})

	m = send(t, m, "enter")
	sel := m.Selection()
	if sel.Start == nil || *sel.Start != today {
		t.Fatalf("expected today selected, got %v", sel.Start)
	}

	m = send(t, m, "l", " ")
	if *m.Selection().Start != oct(20) {
		t.Errorf("expected Oct 20 selected, got %s", m.Selection().Start)
	}
	if m.Selection().End != nil {
		t.Error("single mode should never set End")
	}
}

func TestPress_RangeMode(t *testing.T) {
	m := newModel(daycell.Selection{AllowRange: true}, daycell.Restriction{})

	// start on the 19th, end on the 22nd
	m = send(t, m, "enter", "l", "l", "l", "enter")
	sel := m.Selection()
	if sel.Start == nil || sel.End == nil || *sel.Start != oct(19) || *sel.End != oct(22) {
		t.Fatalf("expected Oct 19-22, got %v-%v", sel.Start, sel.End)
	}
	if m.Decision(oct(20)).State != daycell.StateInRange {
		t.Errorf("expected Oct 20 in range, got %s", m.Decision(oct(20)).State)
	}

	// a third press starts over
	m = send(t, m, "l", "enter")
	sel = m.Selection()
	if *sel.Start != oct(23) || sel.End != nil {
		t.Errorf("expected fresh start on Oct 23, got %v-%v", sel.Start, sel.End)
	}

	// pressing before the start moves the start
	m = send(t, m, "h", "h", "enter")
	if *m.Selection().Start != oct(21) || m.Selection().End != nil {
		t.Errorf("expected start moved to Oct 21, got %v", m.Selection().Start)
	}

	// pressing the start again closes a one-day range
	m = send(t, m, "enter")
	if m.Decision(oct(21)).State != daycell.StateRangeSingle {
		t.Errorf("expected single-day range, got %s", m.Decision(oct(21)).State)
	}
}

func TestPress_IgnoresOutOfRange(t *testing.T) {
	m := newModel(daycell.Selection{AllowRange: true}, daycell.Restriction{
		MinRangeDuration: daycell.ScalarDuration(3),
		MaxDate:          dateutil.Ptr(oct(30)),
	})

	m = send(t, m, "enter", "l", "enter")
	if m.Selection().End != nil {
		t.Error("press inside the minimum duration should be ignored")
	}

	m = send(t, m, "l", "l", "enter")
	if m.Selection().End == nil || *m.Selection().End != oct(22) {
		t.Errorf("expected end at start + 3, got %v", m.Selection().End)
	}

	m = send(t, m, "c")
	if m.Selection().Start != nil {
		t.Fatal("expected selection cleared")
	}
	m = send(t, m, "j", "j", "enter")
	if m.Selection().Start != nil {
		t.Error("press after max date should be ignored")
	}
}

func TestPress_DateChangeDisabled(t *testing.T) {
	m := New(Options{Styles: theme.DefaultStyles(), Today: today})

	m = send(t, m, "enter")
	if m.Selection().Start != nil {
		t.Error("expected presses ignored when date change is disabled")
	}
}

func TestClearAndToggle_DateChangeDisabled(t *testing.T) {
	m := New(Options{
		Selection: daycell.Selection{AllowRange: true, Start: dateutil.Ptr(oct(1)), End: dateutil.Ptr(oct(4))},
		Styles:    theme.DefaultStyles(),
		Today:     today,
	})

	m = send(t, m, "c", "r")
	sel := m.Selection()
	if !sel.AllowRange || sel.Start == nil || sel.End == nil {
		t.Errorf("expected selection untouched when date change is disabled, got %+v", sel)
	}
}

func TestSelectionChangedMsg(t *testing.T) {
	m := newModel(daycell.Selection{}, daycell.Restriction{})

	updated, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(messages.SelectionChangedMsg)
	if !ok {
		t.Fatalf("expected SelectionChangedMsg, got %T", cmd())
	}
	if msg.Selection.Start == nil || *msg.Selection.Start != today {
		t.Errorf("expected today in message, got %v", msg.Selection.Start)
	}

	updated, cmd = updated.(Model).Update(msg)
	if cmd != nil {
		t.Error("expected no follow-up command")
	}
	if *updated.(Model).Selection().Start != today {
		t.Error("handling the message should not change the selection")
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		sel  daycell.Selection
		want string
	}{
		{daycell.Selection{}, "none"},
		{daycell.Selection{Start: dateutil.Ptr(oct(1))}, "2026-10-01"},
		{daycell.Selection{AllowRange: true, Start: dateutil.Ptr(oct(1)), End: dateutil.Ptr(oct(4))}, "2026-10-01..2026-10-04"},
	}
	for _, tt := range tests {
		if got := formatRange(tt.sel); got != tt.want {
			t.Errorf("formatRange(%+v): expected %q, got %q", tt.sel, tt.want, got)
		}
	}
}

func TestBadgeStylesReachDecision(t *testing.T) {
	style := lipgloss.NewStyle().Background(lipgloss.Color("1"))
	m := New(Options{Styles: theme.DefaultStyles(), Today: today, BadgeStyle: &style})

	updated, _ := m.Update(messages.BadgesLoadedMsg{Counts: badges.Counts{oct(21): 1}})
	d := updated.(Model).Decision(oct(21))
	if d.Badge == nil {
		t.Fatal("expected badge")
	}
	if got := d.Badge.Style[len(d.Badge.Style)-1].GetBackground(); got != lipgloss.Color("1") {
		t.Errorf("expected badge style override, got %v", got)
	}
}

func TestToggleRange(t *testing.T) {
	m := newModel(daycell.Selection{AllowRange: true, Start: dateutil.Ptr(oct(1)), End: dateutil.Ptr(oct(4))}, daycell.Restriction{})

	m = send(t, m, "r")
	if m.Selection().AllowRange {
		t.Error("expected single mode after toggle")
	}
	if m.Selection().End != nil {
		t.Error("expected End cleared on toggle")
	}
	if m.Selection().Start == nil {
		t.Error("expected Start kept on toggle")
	}
}

func TestJumpMode(t *testing.T) {
	m := newModel(daycell.Selection{}, daycell.Restriction{})

	m = send(t, m, "i")
	m = send(t, m, "d", "e", "c", "enter")
	if m.ViewMonth() != dateutil.New(2026, time.December, 1) {
		t.Errorf("expected December, got %s", m.ViewMonth())
	}

	m = send(t, m, "i", "x", "y", "z", "z", "y", "enter")
	if !strings.Contains(m.View(), "invalid") {
		t.Error("expected error shown for unparsable input")
	}

	m = send(t, m, "esc")
	if m.mode != calendarMode {
		t.Error("expected esc to return to calendar")
	}
}

func TestConfirmAndQuit(t *testing.T) {
	m := newModel(daycell.Selection{}, daycell.Restriction{})

	updated, cmd := m.Update(key("y"))
	if !updated.(Model).Confirmed() {
		t.Error("expected confirmed")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	updated, _ = m.Update(key("q"))
	if updated.(Model).Confirmed() {
		t.Error("q should quit without confirming")
	}
}

func TestBadgesLoaded(t *testing.T) {
	m := newModel(daycell.Selection{}, daycell.Restriction{})

	updated, _ := m.Update(messages.BadgesLoadedMsg{Counts: badges.Counts{oct(21): 3}})
	m = updated.(Model)

	d := m.Decision(oct(21))
	if d.Badge == nil || d.Badge.Count != 3 {
		t.Errorf("expected badge 3 on Oct 21, got %+v", d.Badge)
	}
	if m.Decision(oct(22)).Badge != nil {
		t.Error("expected no badge on Oct 22")
	}
}

func TestInit_NoNotesDirs(t *testing.T) {
	m := newModel(daycell.Selection{}, daycell.Restriction{})
	if m.Init() != nil {
		t.Error("expected no command without notes dirs")
	}
}

func TestView(t *testing.T) {
	m := newModel(daycell.Selection{AllowRange: true, Start: dateutil.Ptr(oct(5))}, daycell.Restriction{})

	out := m.View()
	for _, want := range []string{"Pick a range", "October 2026", "Su", "31", "Start: 2026-10-05", "End: —"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	m = send(t, m, "?")
	if !strings.Contains(m.View(), "Toggle range selection") {
		t.Error("expected help popup")
	}
	m = send(t, m, "x")
	if m.mode != calendarMode {
		t.Error("expected any key to close help")
	}
}

func TestParseJump(t *testing.T) {
	tests := []struct {
		input string
		want  dateutil.Day
	}{
		{"today", today},
		{"tomorrow", oct(20)},
		{"+5", oct(24)},
		{"-19", dateutil.New(2026, time.September, 30)},
		{"2027-03-15", dateutil.New(2027, time.March, 15)},
		{"03-15", dateutil.New(2026, time.March, 15)},
		{"oct", oct(1)},
		{"Sept 2027", dateutil.New(2027, time.September, 1)},
		{"feb", dateutil.New(2026, time.February, 1)},
	}

	for _, tt := range tests {
		got, err := parseJump(tt.input, today)
		if err != nil {
			t.Errorf("parseJump(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseJump(%q): expected %s, got %s", tt.input, tt.want, got)
		}
	}

	for _, bad := range []string{"", "+x", "xyzzy", "oct twenty", "oct 2027 extra"} {
		if _, err := parseJump(bad, today); err == nil {
			t.Errorf("parseJump(%q): expected error", bad)
		}
	}
}
