// Package picker is the month-grid host for daycell: it owns the cursor,
// the visible month and the selection, and asks daycell how to draw and
// whether to accept a press for every cell.
package picker

import (
	"fmt"
	"strings"
	"time"

	"calpick/internal/badges"
	"calpick/internal/dateutil"
	"calpick/internal/daycell"
	"calpick/internal/logs"
	"calpick/internal/tui/messages"
	"calpick/internal/tui/shared"
	"calpick/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pickerMode int

const (
	calendarMode pickerMode = iota
	jumpMode
	helpMode
)

// Options configures a picker.
type Options struct {
	Title            string
	Selection        daycell.Selection
	Restriction      daycell.Restriction
	CustomStyles     []daycell.CustomDateStyle
	Styles           daycell.Styles
	Overrides        daycell.Overrides
	BadgeStyle       *lipgloss.Style
	BadgeTextStyle   *lipgloss.Style
	EnableDateChange bool
	NotesDirs        []string
	Today            dateutil.Day // zero means the current local day
}

// Model is the picker's bubbletea model.
type Model struct {
	opts      Options
	mode      pickerMode
	sel       daycell.Selection
	today     dateutil.Day
	cursor    dateutil.Day
	viewMonth dateutil.Day
	badges    badges.Counts
	textInput textinput.Model
	jumpErr   string
	confirmed bool
	width     int
	height    int
}

// New creates a picker with the cursor on the selection start, or on today.
func New(opts Options) Model {
	today := opts.Today
	if today.IsZero() {
		today = dateutil.Today()
	}
	if opts.Title == "" {
		opts.Title = "Pick a date"
		if opts.Selection.AllowRange {
			opts.Title = "Pick a range"
		}
	}

	cursor := today
	if opts.Selection.Start != nil {
		cursor = *opts.Selection.Start
	}

	ti := textinput.New()
	ti.Placeholder = "2026-03-15, +5, tomorrow, oct 2027"
	ti.CharLimit = 20
	ti.Width = 30

	return Model{
		opts:      opts,
		sel:       opts.Selection,
		today:     today,
		cursor:    cursor,
		viewMonth: cursor.FirstOfMonth(),
		badges:    badges.Counts{},
		textInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return messages.LoadBadges(m.opts.NotesDirs)
}

// Selection returns the current selection.
func (m Model) Selection() daycell.Selection {
	return m.sel
}

// Confirmed reports whether the user accepted the selection before quitting.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cursor returns the day under the cursor.
func (m Model) Cursor() dateutil.Day {
	return m.cursor
}

// ViewMonth returns the first day of the visible month.
func (m Model) ViewMonth() dateutil.Day {
	return m.viewMonth
}

// Decision resolves how day renders given the current picker state.
func (m Model) Decision(day dateutil.Day) daycell.Decision {
	return daycell.Resolve(daycell.Input{
		Date:             day,
		Today:            m.today,
		Selection:        m.sel,
		Restriction:      m.opts.Restriction,
		CustomStyles:     m.opts.CustomStyles,
		Styles:           m.opts.Styles,
		Overrides:        m.opts.Overrides,
		Badge: daycell.Badge{
			Count:     m.badges.For(day),
			Style:     m.opts.BadgeStyle,
			TextStyle: m.opts.BadgeTextStyle,
		},
		EnableDateChange: m.opts.EnableDateChange,
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case messages.BadgesLoadedMsg:
		if msg.Err != nil {
			logs.Logger.Printf("Badge scan failed: %v", msg.Err)
			return m, nil
		}
		m.badges = msg.Counts
		logs.Logger.Printf("Loaded badges for %d days", len(msg.Counts))
		return m, nil

	case messages.SelectionChangedMsg:
		logs.Logger.Printf("Selection changed: %s", formatRange(msg.Selection))
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case helpMode:
			m.mode = calendarMode
			return m, nil
		case jumpMode:
			return m.updateJump(msg)
		default:
			return m.updateCalendar(msg)
		}
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "y":
		m.confirmed = true
		return m, tea.Quit
	case "enter", " ":
		if m.press(m.cursor) {
			return m, messages.SelectionChanged(m.sel)
		}
	case "c":
		if !m.opts.EnableDateChange {
			return m, nil
		}
		m.sel.Start = nil
		m.sel.End = nil
		return m, messages.SelectionChanged(m.sel)
	case "r":
		if !m.opts.EnableDateChange {
			return m, nil
		}
		m.sel.AllowRange = !m.sel.AllowRange
		m.sel.End = nil
		return m, messages.SelectionChanged(m.sel)
	case "i", "/":
		m.mode = jumpMode
		m.jumpErr = ""
		m.textInput.SetValue("")
		cmd := m.textInput.Focus()
		return m, cmd
	case "?":
		m.mode = helpMode
	case "t":
		m.moveTo(m.today)
	case "h", "left":
		m.moveTo(m.cursor.AddDays(-1))
	case "l", "right":
		m.moveTo(m.cursor.AddDays(1))
	case "k", "up":
		m.moveTo(m.cursor.AddDays(-7))
	case "j", "down":
		m.moveTo(m.cursor.AddDays(7))
	case "H", "-":
		m.shiftMonth(-1)
	case "L", "+", "=":
		m.shiftMonth(1)
	}
	return m, nil
}

func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		m.mode = calendarMode
		m.textInput.Blur()
		return m, nil
	case "enter":
		day, err := parseJump(m.textInput.Value(), m.today)
		if err != nil {
			m.jumpErr = err.Error()
			return m, nil
		}
		m.moveTo(day)
		m.mode = calendarMode
		m.textInput.Blur()
		return m, nil
	default:
		m.textInput, cmd = m.textInput.Update(msg)
	}

	return m, cmd
}

// press applies a pick on day and reports whether the selection changed.
// Cells the resolver marks non-interactive ignore presses.
func (m *Model) press(day dateutil.Day) bool {
	if !m.Decision(day).Interactive {
		return false
	}

	picked := dateutil.Ptr(day)
	switch {
	case !m.sel.AllowRange:
		m.sel.Start = picked
		m.sel.End = nil
	case m.sel.Start == nil || m.sel.End != nil:
		m.sel.Start = picked
		m.sel.End = nil
	case day.Before(*m.sel.Start):
		m.sel.Start = picked
	default:
		m.sel.End = picked
	}
	return true
}

func (m *Model) moveTo(day dateutil.Day) {
	m.cursor = day
	if day.Year != m.viewMonth.Year || day.Month != m.viewMonth.Month {
		m.viewMonth = day.FirstOfMonth()
	}
}

func (m *Model) shiftMonth(delta int) {
	first := dateutil.New(m.viewMonth.Year, m.viewMonth.Month+time.Month(delta), 1)
	m.viewMonth = first
	day := m.cursor.Day
	if n := first.DaysInMonth(); day > n {
		day = n
	}
	m.cursor = dateutil.New(first.Year, first.Month, day)
}

func (m Model) View() string {
	if m.mode == helpMode {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	var s strings.Builder

	s.WriteString(theme.ModalTitle.Render(m.opts.Title))
	s.WriteString("\n\n")
	s.WriteString(m.renderMonth())
	s.WriteString("\n")
	s.WriteString(m.renderSelection())

	if m.mode == jumpMode {
		s.WriteString("\n\n")
		s.WriteString(m.textInput.View())
		if m.jumpErr != "" {
			s.WriteString("\n")
			s.WriteString(theme.Error.Render(m.jumpErr))
		}
	}

	box := theme.ModalBox.Render(s.String())
	hints := theme.HelpHint.Render(m.hintText())

	if m.height == 0 {
		return box + "\n" + hints
	}
	box = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
	return shared.CenterWithBottomHints(box, hints, m.height)
}

func (m Model) renderMonth() string {
	return RenderMonth(m.viewMonth, m.renderCell)
}

func (m Model) renderCell(day dateutil.Day) string {
	d := m.Decision(day)
	if day.Equal(m.cursor) && m.mode != jumpMode {
		d.Container = append(d.Container, theme.Cursor)
	}
	return daycell.Render(d)
}

func (m Model) renderSelection() string {
	format := func(d *dateutil.Day) string {
		if d == nil {
			return "—"
		}
		return d.String()
	}

	if !m.sel.AllowRange {
		return fmt.Sprintf("Selected: %s", format(m.sel.Start))
	}
	return fmt.Sprintf("Start: %s   End: %s", format(m.sel.Start), format(m.sel.End))
}

func formatRange(sel daycell.Selection) string {
	switch {
	case sel.Start == nil:
		return "none"
	case sel.AllowRange && sel.End != nil:
		return sel.Start.String() + ".." + sel.End.String()
	default:
		return sel.Start.String()
	}
}

func (m Model) hintText() string {
	if m.mode == jumpMode {
		return "enter: jump • esc: back"
	}
	return "hjkl: move • H/L: month • t: today • enter: pick • r: range • y: done • ?: help"
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Navigate",
			Binds: []shared.HelpBind{
				{Key: "h/j/k/l", Desc: "Move by day / week"},
				{Key: "H/L  -/+", Desc: "Previous / next month"},
				{Key: "t", Desc: "Jump to today"},
				{Key: "i  /", Desc: "Jump to a typed date or month"},
			},
		},
		{
			Title: "Select",
			Binds: []shared.HelpBind{
				{Key: "enter  space", Desc: "Pick the day under the cursor"},
				{Key: "r", Desc: "Toggle range selection"},
				{Key: "c", Desc: "Clear selection"},
				{Key: "y", Desc: "Accept and quit"},
				{Key: "q  esc", Desc: "Quit without accepting"},
			},
		},
	}
}
