package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/username/calgrid/pkg/calendar"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Locale   LocaleConfig   `mapstructure:"locale"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents grid layout and week numbering configuration
type CalendarConfig struct {
	FirstWeekday     string `mapstructure:"first_weekday"` // "sunday" .. "saturday"
	WeekNumbers      string `mapstructure:"week_numbers"`  // "four_day" or "traditional"
	ShowAdjacentDays bool   `mapstructure:"show_adjacent_days"`
	ForceSixWeeks    bool   `mapstructure:"force_six_weeks"`
	ShowWeekNumbers  bool   `mapstructure:"show_week_numbers"`
	MonthsPerRow     int    `mapstructure:"months_per_row"`
}

// LocaleConfig represents locale configuration
type LocaleConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig represents logger configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. With an empty path it searches the
// usual locations and treats a missing file as an empty configuration;
// an explicit path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/calgrid")
		v.AddConfigPath("/etc/calgrid")
	}

	// Read environment variables
	v.SetEnvPrefix("calgrid")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.FirstWeekday != "" {
		if _, err := ParseWeekday(c.Calendar.FirstWeekday); err != nil {
			return fmt.Errorf("calendar.first_weekday: %w", err)
		}
	}
	if c.Calendar.WeekNumbers != "" {
		if _, err := calendar.ParseWeekRule(c.Calendar.WeekNumbers); err != nil {
			return fmt.Errorf("calendar.week_numbers: %w", err)
		}
	}
	if c.Calendar.MonthsPerRow < 0 {
		return fmt.Errorf("calendar.months_per_row must not be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn' or 'error', got '%s'", c.Log.Level)
	}

	return nil
}

// GetFirstWeekday returns the configured first day of the week.
// Default: Sunday
func (c *CalendarConfig) GetFirstWeekday() time.Weekday {
	wd, err := ParseWeekday(c.FirstWeekday)
	if err != nil {
		return time.Sunday
	}
	return wd
}

// GetWeekRule returns the configured week numbering rule.
// Default: four_day
func (c *CalendarConfig) GetWeekRule() calendar.WeekRule {
	rule, err := calendar.ParseWeekRule(c.WeekNumbers)
	if err != nil {
		return calendar.WeekRuleFourDay
	}
	return rule
}

// GetMonthsPerRow returns how many month grids a year view puts side by
// side. Default: 3
func (c *CalendarConfig) GetMonthsPerRow() int {
	if c.MonthsPerRow <= 0 {
		return 3
	}
	return c.MonthsPerRow
}

// weekdayNames maps config spellings to weekdays
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday parses a weekday name as spelled in config files and flags.
func ParseWeekday(s string) (time.Weekday, error) {
	if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("unknown weekday '%s'", s)
}
