package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"calpick/internal/badges"
	"calpick/internal/dateutil"
	"calpick/internal/daycell"
	"calpick/internal/logs"
	"calpick/internal/tui/picker"

	"github.com/charmbracelet/lipgloss"
)

// Env is everything a subcommand needs to resolve cells outside the TUI.
type Env struct {
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
	Out              io.Writer    // nil means os.Stdout
}

// Run executes the CLI with the given arguments.
// The first argument is the command name.
func Run(args []string, env Env) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Today.IsZero() {
		env.Today = dateutil.Today()
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "cell", "c":
		return runCell(cmdArgs, env)
	case "month", "m":
		return runMonth(cmdArgs, env)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func runCell(args []string, env Env) int {
	positional, rest := splitPositional(args)
	fs, start, end, allowRange := selectionFlags("cell", env)
	if err := fs.Parse(rest); err != nil {
		return 1
	}
	if positional == "" && fs.NArg() > 0 {
		positional = fs.Arg(0)
	}
	if positional == "" {
		fmt.Fprintln(os.Stderr, "Error: date required")
		fmt.Fprintln(os.Stderr, "Usage: calpick cell [-start DATE] [-end DATE] [-range] YYYY-MM-DD")
		return 1
	}

	day, err := dateutil.Parse(positional)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	sel, err := ParseSelection(*start, *end, *allowRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	d := resolve(env, sel, scanBadges(env.NotesDirs), day)

	badge := 0
	if d.Badge != nil {
		badge = d.Badge.Count
	}
	fmt.Fprintf(env.Out, "%-12s %s\n", "date", d.Date)
	fmt.Fprintf(env.Out, "%-12s %s\n", "state", d.State)
	fmt.Fprintf(env.Out, "%-12s %t\n", "selectable", d.Selectable)
	fmt.Fprintf(env.Out, "%-12s %t\n", "interactive", d.Interactive)
	fmt.Fprintf(env.Out, "%-12s %t\n", "today", d.ShowTodayIndicator)
	fmt.Fprintf(env.Out, "%-12s %d\n", "badge", badge)
	return 0
}

func runMonth(args []string, env Env) int {
	positional, rest := splitPositional(args)
	fs, start, end, allowRange := selectionFlags("month", env)
	if err := fs.Parse(rest); err != nil {
		return 1
	}
	if positional == "" && fs.NArg() > 0 {
		positional = fs.Arg(0)
	}

	sel, err := ParseSelection(*start, *end, *allowRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	month := env.Today.FirstOfMonth()
	if sel.Start != nil {
		month = sel.Start.FirstOfMonth()
	}
	if positional != "" {
		t, err := time.Parse("2006-01", positional)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q, expected YYYY-MM\n", positional)
			return 1
		}
		month = dateutil.Of(t)
	}

	counts := scanBadges(env.NotesDirs)
	grid := picker.RenderMonth(month, func(day dateutil.Day) string {
		return daycell.Render(resolve(env, sel, counts, day))
	})
	fmt.Fprint(env.Out, grid)
	return 0
}

func selectionFlags(name string, env Env) (*flag.FlagSet, *string, *string, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	start := fs.String("start", formatDay(env.Selection.Start), "Selection start (YYYY-MM-DD)")
	end := fs.String("end", formatDay(env.Selection.End), "Selection end (YYYY-MM-DD)")
	allowRange := fs.Bool("range", env.Selection.AllowRange, "Range selection mode")
	return fs, start, end, allowRange
}

func formatDay(d *dateutil.Day) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// splitPositional lets the date come before or after the flags.
func splitPositional(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}

// ParseSelection builds a selection from optional YYYY-MM-DD start and end.
func ParseSelection(start, end string, allowRange bool) (daycell.Selection, error) {
	sel := daycell.Selection{AllowRange: allowRange}
	if start != "" {
		day, err := dateutil.Parse(start)
		if err != nil {
			return sel, fmt.Errorf("-start: %w", err)
		}
		sel.Start = &day
	}
	if end != "" {
		day, err := dateutil.Parse(end)
		if err != nil {
			return sel, fmt.Errorf("-end: %w", err)
		}
		sel.End = &day
	}
	return sel, nil
}

func scanBadges(dirs []string) badges.Counts {
	if len(dirs) == 0 {
		return badges.Counts{}
	}
	counts, err := badges.Scan(dirs)
	if err != nil {
		logs.Logger.Printf("Badge scan failed: %v", err)
		return badges.Counts{}
	}
	return counts
}

func resolve(env Env, sel daycell.Selection, counts badges.Counts, day dateutil.Day) daycell.Decision {
	return daycell.Resolve(daycell.Input{
		Date:             day,
		Today:            env.Today,
		Selection:        sel,
		Restriction:      env.Restriction,
		CustomStyles:     env.CustomStyles,
		Styles:           env.Styles,
		Overrides:        env.Overrides,
		Badge: daycell.Badge{
			Count:     counts.For(day),
			Style:     env.BadgeStyle,
			TextStyle: env.BadgeTextStyle,
		},
		EnableDateChange: env.EnableDateChange,
	})
}

func printUsage() {
	fmt.Println(`calpick - Calendar day picker

Usage: calpick [flags] [command] [arguments]

Commands:
  cell, c     Print the resolved state of one day
              calpick cell 2026-10-05
              calpick cell -range -start 2026-10-01 -end 2026-10-09 2026-10-05

  month, m    Print a rendered month grid
              calpick month               # month of -start, or the current month
              calpick month 2026-12

  help        Show this help message

Command flags:
  -start <date>    Selection start (YYYY-MM-DD)
  -end <date>      Selection end (YYYY-MM-DD)
  -range           Range selection mode

Global flags:
  -range           Start in range selection mode
  -start, -end     Initial selection
  -min, -max       Earliest / latest selectable day
  -styles <file>   Day styles YAML file
  -notes <dirs>    Note directories for badges (comma-separated)

Running calpick without a command launches the interactive picker.
On "y" the selection is printed to stdout.`)
}
