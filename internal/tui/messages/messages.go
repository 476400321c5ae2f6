package messages

import (
	"calpick/internal/badges"
	"calpick/internal/daycell"

	tea "github.com/charmbracelet/bubbletea"
)

// BadgesLoadedMsg carries the result of a background badge scan
type BadgesLoadedMsg struct {
	Counts badges.Counts
	Err    error
}

// SelectionChangedMsg is emitted whenever a press changes the selection
type SelectionChangedMsg struct {
	Selection daycell.Selection
}

// LoadBadges scans dirs off the update loop. It returns nil when there is
// nothing to scan.
func LoadBadges(dirs []string) tea.Cmd {
	if len(dirs) == 0 {
		return nil
	}
	return func() tea.Msg {
		counts, err := badges.Scan(dirs)
		return BadgesLoadedMsg{Counts: counts, Err: err}
	}
}

// SelectionChanged reports sel back through the update loop.
func SelectionChanged(sel daycell.Selection) tea.Cmd {
	return func() tea.Msg {
		return SelectionChangedMsg{Selection: sel}
	}
}
