package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"calpick/internal/dateutil"
	"calpick/internal/daycell"
)

// Config holds the unified application configuration
type Config struct {
	AllowRangeSelection bool
	EnableDateChange    bool
	MinDate             *dateutil.Day
	MaxDate             *dateutil.Day
	DisabledDates       []dateutil.Day
	MinRangeDuration    int
	MaxRangeDuration    int
	StylesFile          string
	NotesDirs           []string
	LogDir              string
}

// Settings represents the config file structure
type Settings struct {
	AllowRangeSelection bool     `json:"allow_range_selection"`
	EnableDateChange    *bool    `json:"enable_date_change,omitempty"`
	MinDate             string   `json:"min_date,omitempty"`
	MaxDate             string   `json:"max_date,omitempty"`
	DisabledDates       []string `json:"disabled_dates,omitempty"`
	MinRangeDuration    int      `json:"min_range_duration,omitempty"`
	MaxRangeDuration    int      `json:"max_range_duration,omitempty"`
	StylesFile          string   `json:"styles_file,omitempty"`
	NotesDirs           []string `json:"notes_dirs"`
	LogDir              string   `json:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags. Zero values leave lower-priority sources alone.
type CLIFlags struct {
	Range      bool
	MinDate    string
	MaxDate    string
	StylesFile string
	NotesDirs  []string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		EnableDateChange: true,
	}

	// Priority 3: config file
	configPath, err := getConfigPath()
	if err == nil {
		if settings, err := loadConfigFile(configPath); err == nil {
			if err := cfg.apply(settings); err != nil {
				return nil, fmt.Errorf("config %s: %w", configPath, err)
			}
		}
	}

	// Priority 2: Environment variables override config file
	if v := os.Getenv("CALPICK_STYLES_FILE"); v != "" {
		cfg.StylesFile = expandPath(v)
	}
	if v := os.Getenv("CALPICK_NOTES_DIRS"); v != "" {
		cfg.NotesDirs = expandPaths(parseColonSeparated(v))
	}
	if v := os.Getenv("CALPICK_RANGE"); v != "" {
		cfg.AllowRangeSelection = v == "1" || strings.EqualFold(v, "true")
	}

	// Priority 1: CLI flags override everything
	if flags.Range {
		cfg.AllowRangeSelection = true
	}
	if flags.MinDate != "" {
		day, err := dateutil.Parse(flags.MinDate)
		if err != nil {
			return nil, fmt.Errorf("-min: %w", err)
		}
		cfg.MinDate = &day
	}
	if flags.MaxDate != "" {
		day, err := dateutil.Parse(flags.MaxDate)
		if err != nil {
			return nil, fmt.Errorf("-max: %w", err)
		}
		cfg.MaxDate = &day
	}
	if flags.StylesFile != "" {
		cfg.StylesFile = expandPath(flags.StylesFile)
	}
	if len(flags.NotesDirs) > 0 {
		cfg.NotesDirs = expandPaths(flags.NotesDirs)
	}

	return cfg, nil
}

func (c *Config) apply(s *Settings) error {
	c.AllowRangeSelection = s.AllowRangeSelection
	if s.EnableDateChange != nil {
		c.EnableDateChange = *s.EnableDateChange
	}
	if s.MinDate != "" {
		day, err := dateutil.Parse(s.MinDate)
		if err != nil {
			return err
		}
		c.MinDate = &day
	}
	if s.MaxDate != "" {
		day, err := dateutil.Parse(s.MaxDate)
		if err != nil {
			return err
		}
		c.MaxDate = &day
	}
	for _, raw := range s.DisabledDates {
		day, err := dateutil.Parse(raw)
		if err != nil {
			return err
		}
		c.DisabledDates = append(c.DisabledDates, day)
	}
	c.MinRangeDuration = s.MinRangeDuration
	c.MaxRangeDuration = s.MaxRangeDuration
	if s.StylesFile != "" {
		c.StylesFile = expandPath(s.StylesFile)
	}
	if len(s.NotesDirs) > 0 {
		c.NotesDirs = expandPaths(s.NotesDirs)
	}
	if s.LogDir != "" {
		c.LogDir = expandPath(s.LogDir)
	}
	return nil
}

// Restriction builds the resolver restriction from the configured bounds.
// Scalar durations of 0 mean "no constraint".
func (c *Config) Restriction() daycell.Restriction {
	r := daycell.Restriction{
		MinDate:  c.MinDate,
		MaxDate:  c.MaxDate,
		Disabled: c.DisabledDates,
	}
	if c.MinRangeDuration > 0 {
		r.MinRangeDuration = daycell.ScalarDuration(c.MinRangeDuration)
	}
	if c.MaxRangeDuration > 0 {
		r.MaxRangeDuration = daycell.ScalarDuration(c.MaxRangeDuration)
	}
	return r
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "calpick", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	enabled := true
	settings := Settings{
		EnableDateChange: &enabled,
		NotesDirs:        []string{},
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	return splitTrimmed(s, ",")
}

func parseColonSeparated(s string) []string {
	return splitTrimmed(s, ":")
}

func splitTrimmed(s, sep string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func expandPaths(paths []string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = expandPath(p)
	}
	return result
}
