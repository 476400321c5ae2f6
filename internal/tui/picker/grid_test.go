package picker

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"calpick/internal/dateutil"
)

func TestRenderMonth(t *testing.T) {
	var seen []dateutil.Day
	out := RenderMonth(dateutil.New(2026, time.February, 14), func(d dateutil.Day) string {
		seen = append(seen, d)
		return fmt.Sprintf("<%d>", d.Day)
	})

	if len(seen) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(seen))
	}
	if seen[0] != dateutil.New(2026, time.February, 1) {
		t.Errorf("expected grid to start on Feb 1, got %s", seen[0])
	}
	if !strings.Contains(out, "February 2026") {
		t.Error("expected month header")
	}

	// Feb 2026 starts on a Sunday and fills exactly four weeks.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if got := len(lines); got != 7 {
		t.Errorf("expected header, blank, weekdays and 4 weeks, got %d lines", got)
	}
	if !strings.HasPrefix(lines[3], "<1>") {
		t.Errorf("expected first week to open with day 1, got %q", lines[3])
	}
}
