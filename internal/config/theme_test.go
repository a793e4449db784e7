package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/boardview/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  critical_bar: "#00FF00"
`)
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.CriticalBar != "#00FF00" {
		t.Errorf("Expected critical_bar to be #00FF00, got %s", cfg.ColorScheme.CriticalBar)
	}
	if cfg.ColorScheme.Bar == "" {
		t.Error("Expected bar to have default value")
	}
}

func TestMonochromePreset(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "theme:\n  preset: monochrome\n  bar: \"#123456\"\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	mono := *colors.Monochrome()
	if cfg.ColorScheme.Accent != mono.Accent {
		t.Errorf("Accent = %s, want monochrome %s", cfg.ColorScheme.Accent, mono.Accent)
	}
	if cfg.ColorScheme.Bar != "#123456" {
		t.Errorf("Bar = %s, want the custom override", cfg.ColorScheme.Bar)
	}
}
