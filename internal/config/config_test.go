package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/username/calgrid/pkg/calendar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
calendar:
  first_weekday: monday
  week_numbers: traditional
  show_adjacent_days: true
  force_six_weeks: true
  show_week_numbers: true
  months_per_row: 4
locale:
  file: locales/de.yaml
log:
  file: logs/calgrid.log
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := cfg.Calendar.GetFirstWeekday(); got != time.Monday {
		t.Errorf("GetFirstWeekday() = %v, want Monday", got)
	}
	if got := cfg.Calendar.GetWeekRule(); got != calendar.WeekRuleTraditional {
		t.Errorf("GetWeekRule() = %v, want traditional", got)
	}
	if !cfg.Calendar.ShowAdjacentDays || !cfg.Calendar.ForceSixWeeks || !cfg.Calendar.ShowWeekNumbers {
		t.Errorf("bool flags = %+v, want all true", cfg.Calendar)
	}
	if got := cfg.Calendar.GetMonthsPerRow(); got != 4 {
		t.Errorf("GetMonthsPerRow() = %d, want 4", got)
	}
	if cfg.Locale.File != "locales/de.yaml" {
		t.Errorf("Locale.File = %q", cfg.Locale.File)
	}
	if cfg.Log.File != "logs/calgrid.log" || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "calendar: {}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.Calendar.GetFirstWeekday(); got != time.Sunday {
		t.Errorf("GetFirstWeekday() = %v, want Sunday", got)
	}
	if got := cfg.Calendar.GetWeekRule(); got != calendar.WeekRuleFourDay {
		t.Errorf("GetWeekRule() = %v, want four_day", got)
	}
	if got := cfg.Calendar.GetMonthsPerRow(); got != 3 {
		t.Errorf("GetMonthsPerRow() = %d, want 3", got)
	}
	if cfg.Calendar.ShowAdjacentDays || cfg.Calendar.ForceSixWeeks {
		t.Errorf("bool flags = %+v, want all false", cfg.Calendar)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing explicit path expected error, got nil")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad weekday", "calendar:\n  first_weekday: someday\n"},
		{"bad week rule", "calendar:\n  week_numbers: fortnightly\n"},
		{"bad months per row", "calendar:\n  months_per_row: -2\n"},
		{"bad log level", "log:\n  level: loud\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"sunday", time.Sunday, false},
		{"Monday", time.Monday, false},
		{" WED ", time.Wednesday, false},
		{"sat", time.Saturday, false},
		{"someday", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseWeekday(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q) expected error, got nil", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekday(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
