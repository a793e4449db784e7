package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/boardview/internal/config/colors"
	"github.com/thenoetrevino/boardview/internal/timeline"
)

// isolate points every config lookup at a fresh temp dir
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvThemeFile, "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "boardview")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.Grab != " " {
		t.Errorf("Default Grab key = %q, want space", defaults.Grab)
	}
	if defaults.Cancel != "esc" {
		t.Errorf("Default Cancel key = %s, want esc", defaults.Cancel)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", cfg.PageSize, DefaultPageSize)
	}
	if cfg.Spans() != timeline.DefaultSpans() {
		t.Errorf("Spans = %+v, want defaults", cfg.Spans())
	}
	if cfg.Timeline.MinBarWidth != timeline.DefaultMinWidth {
		t.Errorf("MinBarWidth = %v, want %v", cfg.Timeline.MinBarWidth, timeline.DefaultMinWidth)
	}
	if filepath.Base(cfg.DatabasePath) != "boardview.db" {
		t.Errorf("DatabasePath = %s, want a boardview.db file", cfg.DatabasePath)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `default_board: roadmap
week_start: monday
timezone: UTC
page_size: 50
timeline:
  week_span: 4
key_mappings:
  quit: "x"
  grab: "g"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.DefaultBoard != "roadmap" {
		t.Errorf("DefaultBoard = %s, want roadmap", cfg.DefaultBoard)
	}
	if cfg.Weekday() != time.Monday {
		t.Errorf("Weekday = %v, want Monday", cfg.Weekday())
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location = %v, %v, want UTC", loc, err)
	}
	if cfg.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.PageSize)
	}
	if cfg.Timeline.WeekSpan != 4 || cfg.Timeline.DaySpan != timeline.DefaultSpans().Days {
		t.Errorf("Timeline = %+v, want week_span 4 and default day span", cfg.Timeline)
	}
	if cfg.KeyMappings.Quit != "x" || cfg.KeyMappings.Grab != "g" {
		t.Errorf("KeyMappings = %+v, want quit x and grab g", cfg.KeyMappings)
	}
	if cfg.KeyMappings.NextBucket != "l" {
		t.Errorf("NextBucket = %s, want l (default)", cfg.KeyMappings.NextBucket)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"week start", "week_start: someday\n", ErrInvalidWeekStart},
		{"timezone", "timezone: Mars/Olympus\n", ErrInvalidTimezone},
		{"log level", "log_level: loud\n", ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			_, err := Load()
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDatabaseEnvOverride(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database_path: /tmp/from-file.db\n")
	t.Setenv(EnvDatabase, "/tmp/from-env.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DatabasePath != "/tmp/from-env.db" {
		t.Errorf("DatabasePath = %s, want the env override", cfg.DatabasePath)
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg.LogLevel = in
		got, err := cfg.Level()
		if err != nil || got != want {
			t.Errorf("Level(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{
		DefaultBoard: "ops",
		KeyMappings:  KeyMappings{Quit: "x"},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(dir, "boardview", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.DefaultBoard != "ops" {
		t.Errorf("Reloaded DefaultBoard = %s, want ops", cfg2.DefaultBoard)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
}
