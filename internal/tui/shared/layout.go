package shared

import "strings"

// CenterWithBottomHints fills height lines: body sits in the middle of the
// space above the hint block, which always takes the last lines. When the
// two don't fit they are simply stacked.
func CenterWithBottomHints(body, hints string, height int) string {
	body = strings.TrimRight(body, "\n")
	hints = strings.TrimRight(hints, "\n")

	bodyLines := 0
	if body != "" {
		bodyLines = strings.Count(body, "\n") + 1
	}
	hintLines := strings.Count(hints, "\n") + 1

	free := height - bodyLines - hintLines
	if free <= 0 {
		if body == "" {
			return hints
		}
		return body + "\n" + hints
	}

	above := free / 2
	below := free - above

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", above))
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("\n", below))
	b.WriteString(hints)
	return b.String()
}
