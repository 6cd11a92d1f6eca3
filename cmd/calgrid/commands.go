package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/calgrid/internal/config"
	"github.com/username/calgrid/internal/localefile"
	"github.com/username/calgrid/internal/render"
	"github.com/username/calgrid/pkg/calendar"
	"github.com/username/calgrid/pkg/date"
)

// calendarFlags are the layout flags shared by the grid commands. Config
// file values apply unless the flag was set on the command line.
type calendarFlags struct {
	firstDay    string
	weekRule    string
	localeFile  string
	adjacent    bool
	sixWeeks    bool
	weekNumbers bool
}

func (f *calendarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstDay, "first-day", "", "First day of the week (sunday..saturday)")
	cmd.Flags().StringVar(&f.weekRule, "week-rule", "", "Week numbering rule (four_day or traditional)")
	cmd.Flags().StringVar(&f.localeFile, "locale-file", "", "YAML locale file")
	cmd.Flags().BoolVar(&f.adjacent, "adjacent", false, "Show adjacent month days")
	cmd.Flags().BoolVar(&f.sixWeeks, "six-weeks", false, "Pad month grids to six weeks")
	cmd.Flags().BoolVar(&f.weekNumbers, "week-numbers", false, "Show week numbers")
}

// buildCalendar resolves flags against config and assembles the calendar.
func buildCalendar(cmd *cobra.Command, f *calendarFlags, cfg *config.Config) (*calendar.Calendar, error) {
	first := cfg.Calendar.GetFirstWeekday()
	if cmd.Flags().Changed("first-day") {
		wd, err := config.ParseWeekday(f.firstDay)
		if err != nil {
			return nil, err
		}
		first = wd
	}

	rule := cfg.Calendar.GetWeekRule()
	if cmd.Flags().Changed("week-rule") {
		r, err := calendar.ParseWeekRule(f.weekRule)
		if err != nil {
			return nil, err
		}
		rule = r
	}

	opts := []calendar.Option{
		calendar.WithFirstWeekday(first),
		calendar.WithWeekRule(rule),
	}

	localePath := cfg.Locale.File
	if cmd.Flags().Changed("locale-file") {
		localePath = f.localeFile
	}
	if localePath != "" {
		loc, err := localefile.Load(localePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load locale: %w", err)
		}
		opts = append(opts, calendar.WithLocale(loc))
	}

	return calendar.New(opts...), nil
}

func (f *calendarFlags) layout(cmd *cobra.Command, cfg *config.Config) (adjacent, sixWeeks, weekNumbers bool) {
	adjacent = cfg.Calendar.ShowAdjacentDays
	if cmd.Flags().Changed("adjacent") {
		adjacent = f.adjacent
	}
	sixWeeks = cfg.Calendar.ForceSixWeeks
	if cmd.Flags().Changed("six-weeks") {
		sixWeeks = f.sixWeeks
	}
	weekNumbers = cfg.Calendar.ShowWeekNumbers
	if cmd.Flags().Changed("week-numbers") {
		weekNumbers = f.weekNumbers
	}
	return adjacent, sixWeeks, weekNumbers
}

func monthCmd() *cobra.Command {
	var flags calendarFlags

	cmd := &cobra.Command{
		Use:   "month [year month]",
		Short: "Render a month grid",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cal, err := buildCalendar(cmd, &flags, cfg)
			if err != nil {
				return err
			}

			today := cal.Today()
			year, month := today.Year, today.Month
			switch len(args) {
			case 1:
				return fmt.Errorf("month takes either no arguments or a year and a month")
			case 2:
				if year, month, err = parseYearMonth(args); err != nil {
					return err
				}
			}

			adjacent, sixWeeks, weekNumbers := flags.layout(cmd, cfg)
			r := render.New(cal, render.Options{
				ShowWeekNumbers: weekNumbers,
				Highlight:       today,
			})

			out, err := r.Month(year, month, adjacent, sixWeeks)
			if err != nil {
				return err
			}

			logger.Info("Rendered month grid",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.String("first_weekday", cal.FirstWeekday().String()))

			fmt.Println(out)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func yearCmd() *cobra.Command {
	var flags calendarFlags
	var monthsPerRow int

	cmd := &cobra.Command{
		Use:   "year [year]",
		Short: "Render all twelve month grids of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cal, err := buildCalendar(cmd, &flags, cfg)
			if err != nil {
				return err
			}

			year := cal.Today().Year
			if len(args) == 1 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid year '%s'", args[0])
				}
			}

			perRow := cfg.Calendar.GetMonthsPerRow()
			if cmd.Flags().Changed("months-per-row") {
				perRow = monthsPerRow
			}

			adjacent, sixWeeks, weekNumbers := flags.layout(cmd, cfg)
			r := render.New(cal, render.Options{
				ShowWeekNumbers: weekNumbers,
				MonthsPerRow:    perRow,
				Highlight:       cal.Today(),
			})

			out, err := r.Year(year, adjacent, sixWeeks)
			if err != nil {
				return err
			}

			logger.Info("Rendered year grid", zap.Int("year", year))

			fmt.Println(out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&monthsPerRow, "months-per-row", 0, "Month grids per row")
	return cmd
}

func weekCmd() *cobra.Command {
	var flags calendarFlags

	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Render the week containing a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cal, err := buildCalendar(cmd, &flags, cfg)
			if err != nil {
				return err
			}

			d := cal.Today()
			if len(args) == 1 {
				if d, err = date.Parse(args[0]); err != nil {
					return err
				}
			}

			r := render.New(cal, render.Options{Highlight: cal.Today()})

			logger.Info("Rendered week", zap.String("date", d.String()))

			fmt.Println(r.Week(d))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func infoCmd() *cobra.Command {
	var flags calendarFlags

	cmd := &cobra.Command{
		Use:   "info [date]",
		Short: "Show facts about a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cal, err := buildCalendar(cmd, &flags, cfg)
			if err != nil {
				return err
			}

			d := cal.Today()
			if len(args) == 1 {
				if d, err = date.Parse(args[0]); err != nil {
					return err
				}
			}

			fmt.Printf("Date:          %s\n", cal.Format(d, "%A, %-d %B %Y"))
			fmt.Printf("ISO:           %s\n", d)
			fmt.Printf("Day of year:   %d of %d\n", d.DayOfYear(), date.DaysInYear(d.Year))
			fmt.Printf("Week:          %d (%s rule)\n", cal.WeekNumber(d), cal.WeekRule())
			fmt.Printf("Julian day:    %d\n", d.JulianDayNumber())
			fmt.Printf("Leap year:     %v\n", d.InLeapYear())
			if today := cal.Today(); d != today {
				fmt.Printf("Days from today: %+d\n", d.DaysBetween(today))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func formatCmd() *cobra.Command {
	var flags calendarFlags

	cmd := &cobra.Command{
		Use:   "format <pattern> [date]",
		Short: "Format a date with a placeholder pattern",
		Long:  "Format a date with a pattern of % placeholders, e.g. \"%A, %-d %B %Y\". Without a date the pattern is applied to today.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cal, err := buildCalendar(cmd, &flags, cfg)
			if err != nil {
				return err
			}

			pattern := args[0]
			d := cal.Today()
			if len(args) == 2 {
				if d, err = date.Parse(args[1]); err != nil {
					return err
				}
			}

			if err := calendar.CheckPattern(pattern); err != nil {
				return err
			}

			fmt.Println(cal.Format(d, pattern))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func parseYearMonth(args []string) (int, int, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year '%s'", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month '%s'", args[1])
	}
	return year, month, nil
}
