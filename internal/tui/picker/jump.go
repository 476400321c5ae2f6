package picker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"calpick/internal/dateutil"

	"github.com/sahilm/fuzzy"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// parseJump turns jump-box input into a day, relative to today.
// Accepts 2026-03-15, 03-15, +5, -2, today, tomorrow, yesterday, and a
// (fuzzy) month name optionally followed by a year: "oct", "sept 2027".
func parseJump(input string, today dateutil.Day) (dateutil.Day, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return dateutil.Day{}, fmt.Errorf("empty date")
	}

	switch input {
	case "today", "t":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	// Relative offsets
	if input[0] == '+' || input[0] == '-' {
		days, err := strconv.Atoi(input[1:])
		if err != nil {
			return dateutil.Day{}, fmt.Errorf("invalid offset %q", input)
		}
		if input[0] == '-' {
			days = -days
		}
		return today.AddDays(days), nil
	}

	// Full date: 2026-03-15
	if day, err := dateutil.Parse(input); err == nil {
		return day, nil
	}

	// Short date: 03-15 (current year)
	if parsed, err := time.Parse("01-02", input); err == nil {
		return dateutil.New(today.Year, parsed.Month(), parsed.Day()), nil
	}

	return parseMonth(input, today)
}

func parseMonth(input string, today dateutil.Day) (dateutil.Day, error) {
	fields := strings.Fields(input)
	if len(fields) > 2 {
		return dateutil.Day{}, fmt.Errorf("invalid date %q", input)
	}

	matches := fuzzy.Find(fields[0], monthNames)
	if len(matches) == 0 {
		return dateutil.Day{}, fmt.Errorf("invalid date %q", input)
	}
	month := time.Month(matches[0].Index + 1)

	year := today.Year
	if len(fields) == 2 {
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return dateutil.Day{}, fmt.Errorf("invalid year %q", fields[1])
		}
		year = y
	}

	return dateutil.New(year, month, 1), nil
}
