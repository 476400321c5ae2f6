package main

import (
	"testing"

	"calpick/internal/dateutil"
	"calpick/internal/daycell"
)

func TestFormatSelection(t *testing.T) {
	a := dateutil.Ptr(dateutil.New(2026, 10, 1))
	b := dateutil.Ptr(dateutil.New(2026, 10, 9))

	tests := []struct {
		name string
		sel  daycell.Selection
		want string
	}{
		{"empty", daycell.Selection{}, ""},
		{"single", daycell.Selection{Start: a, End: b}, "2026-10-01"},
		{"open range", daycell.Selection{AllowRange: true, Start: a}, "2026-10-01"},
		{"closed range", daycell.Selection{AllowRange: true, Start: a, End: b}, "2026-10-01 2026-10-09"},
	}

	for _, tt := range tests {
		if got := formatSelection(tt.sel); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}
