package daycell

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Merge folds styles left to right so that properties set by later styles
// win. Padding and margins are not carried over from earlier styles.
func Merge(styles ...lipgloss.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	for _, s := range styles {
		out = s.Inherit(out)
	}
	return out
}

// Render draws a resolved cell: the day number, marked with the today
// indicator when set, followed by the badge count, inside the cell and container layers.
func Render(d Decision) string {
	box, label, badge := compose(d)

	content := label.Render(fmt.Sprintf("%2d", d.Day))
	if d.Badge != nil {
		content += badge.Render(badgeText(d.Badge.Count))
	}
	return box.Render(content)
}

// compose flattens the layers into the outer box and the two inline
// segments. The segments carry the box's colors so the cell background runs
// under the digits, the badge and the alignment padding alike.
func compose(d Decision) (box, label, badge lipgloss.Style) {
	box = Merge(append(slices.Clone(d.Container), d.Cell...)...)
	inline := box.UnsetWidth().UnsetHeight().UnsetAlign()

	labels := append([]lipgloss.Style{inline}, d.Label...)
	if d.ShowTodayIndicator {
		labels = append(labels, d.TodayIndicator)
	}
	label = Merge(labels...)

	if d.Badge != nil {
		badges := append([]lipgloss.Style{inline}, d.Badge.Style...)
		badge = Merge(append(badges, d.Badge.Text...)...)
	}
	return box, label, badge
}

func badgeText(count int) string {
	if count > 9 {
		return "+"
	}
	return fmt.Sprintf("%d", count)
}
