package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/boardview/internal/config/colors"
	"github.com/thenoetrevino/boardview/internal/timeline"
)

const (
	appName = "boardview"

	// EnvDatabase overrides the database path from the config file
	EnvDatabase = "BOARDVIEW_DB"
	// EnvThemeFile names a yaml file whose theme section is merged over the config
	EnvThemeFile = "BOARDVIEW_THEME_FILE"

	DefaultPageSize = 100
)

// Config represents the application configuration
type Config struct {
	DatabasePath string `yaml:"database_path"`
	DefaultBoard string `yaml:"default_board"`
	WeekStart    string `yaml:"week_start"`
	Timezone     string `yaml:"timezone"`
	PageSize     int    `yaml:"page_size"`
	LogLevel     string `yaml:"log_level"`

	Timeline    TimelineConfig     `yaml:"timeline"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// TimelineConfig sizes the timeline window per zoom level
type TimelineConfig struct {
	DaySpan     int     `yaml:"day_span"`
	WeekSpan    int     `yaml:"week_span"`
	MonthSpan   int     `yaml:"month_span"`
	MinBarWidth float64 `yaml:"min_bar_width"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	loadThemeFile(&cfg)
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadThemeFile merges the theme section of BOARDVIEW_THEME_FILE
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file unreadable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		cfg.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as yaml to path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the fields that need parsing
func (c *Config) Validate() error {
	if _, err := parseWeekday(c.WeekStart); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Weekday returns the first day of the week for calendar grids
func (c *Config) Weekday() time.Weekday {
	d, _ := parseWeekday(c.WeekStart)
	return d
}

// Location resolves the configured timezone. Empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, c.Timezone)
	}
	return loc, nil
}

// Level maps log_level to a slog level
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
}

// Spans returns the timeline window sizes
func (c *Config) Spans() timeline.Spans {
	return timeline.Spans{Days: c.Timeline.DaySpan, Weeks: c.Timeline.WeekSpan, Months: c.Timeline.MonthSpan}
}

func parseWeekday(s string) (time.Weekday, error) {
	if s == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v := strings.ToLower(s); v == name || v == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekStart, s)
}

// Path returns where Load looks for the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDatabasePath returns ~/.boardview/boardview.db
func DefaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return appName + ".db"
	}
	return filepath.Join(homeDir, "."+appName, appName+".db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath()
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	spans := timeline.DefaultSpans()
	if c.Timeline.DaySpan <= 0 {
		c.Timeline.DaySpan = spans.Days
	}
	if c.Timeline.WeekSpan <= 0 {
		c.Timeline.WeekSpan = spans.Weeks
	}
	if c.Timeline.MonthSpan <= 0 {
		c.Timeline.MonthSpan = spans.Months
	}
	if c.Timeline.MinBarWidth <= 0 {
		c.Timeline.MinBarWidth = timeline.DefaultMinWidth
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (c *Config) applyEnv() {
	if db := os.Getenv(EnvDatabase); db != "" {
		c.DatabasePath = db
	}
}
