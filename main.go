package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"calpick/internal/cli"
	"calpick/internal/config"
	"calpick/internal/daycell"
	"calpick/internal/daystyles"
	"calpick/internal/logs"
	"calpick/internal/tui/picker"
	"calpick/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Parse CLI flags
	rangeFlag := flag.Bool("range", false, "Start in range selection mode")
	startFlag := flag.String("start", "", "Initial selection start (YYYY-MM-DD)")
	endFlag := flag.String("end", "", "Initial selection end (YYYY-MM-DD)")
	minFlag := flag.String("min", "", "Earliest selectable day (YYYY-MM-DD)")
	maxFlag := flag.String("max", "", "Latest selectable day (YYYY-MM-DD)")
	stylesFlag := flag.String("styles", "", "Day styles YAML file")
	notesFlag := flag.String("notes", "", "Note directories for badges (comma-separated)")
	flag.Parse()

	cliFlags := config.CLIFlags{
		Range:      *rangeFlag,
		MinDate:    *minFlag,
		MaxDate:    *maxFlag,
		StylesFile: *stylesFlag,
		NotesDirs:  config.ParseCommaSeparated(*notesFlag),
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Reinitialize logger
	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	selection, err := cli.ParseSelection(*startFlag, *endFlag, cfg.AllowRangeSelection)
	if err != nil {
		log.Fatalf("Invalid selection: %v", err)
	}

	restriction := cfg.Restriction()
	var dayStyles daystyles.DayStyles
	if cfg.StylesFile != "" {
		ds, err := daystyles.Load(cfg.StylesFile)
		if err != nil {
			logs.Logger.Printf("Warning: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			restriction = ds.Restrict(restriction)
			dayStyles = ds
		}
	}
	styles := theme.DefaultStyles()

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.Run(args, cli.Env{
			Selection:        selection,
			Restriction:      restriction,
			CustomStyles:     dayStyles.Custom,
			Styles:           styles,
			Overrides:        dayStyles.Overrides,
			BadgeStyle:       dayStyles.BadgeStyle,
			BadgeTextStyle:   dayStyles.BadgeTextStyle,
			EnableDateChange: cfg.EnableDateChange,
			NotesDirs:        cfg.NotesDirs,
		})
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting picker in TUI mode")
	model := picker.New(picker.Options{
		Selection:        selection,
		Restriction:      restriction,
		CustomStyles:     dayStyles.Custom,
		Styles:           styles,
		Overrides:        dayStyles.Overrides,
		BadgeStyle:       dayStyles.BadgeStyle,
		BadgeTextStyle:   dayStyles.BadgeTextStyle,
		EnableDateChange: cfg.EnableDateChange,
		NotesDirs:        cfg.NotesDirs,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}

	if m, ok := final.(picker.Model); ok && m.Confirmed() {
		if out := formatSelection(m.Selection()); out != "" {
			fmt.Println(out)
		}
	}
}

// formatSelection prints "START" for a single pick and "START END" for a
// closed range. An open range prints only its start.
func formatSelection(sel daycell.Selection) string {
	if sel.Start == nil {
		return ""
	}
	if sel.AllowRange && sel.End != nil {
		return sel.Start.String() + " " + sel.End.String()
	}
	return sel.Start.String()
}
