package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/calgrid/pkg/date"
)

// WeekRule selects the week-numbering policy.
type WeekRule int

const (
	// WeekRuleFourDay assigns each week to the year owning at least four
	// of its days. With Monday-first weeks this is exactly ISO 8601 week
	// numbering.
	WeekRuleFourDay WeekRule = iota + 1
	// WeekRuleTraditional numbers weeks from the week containing
	// January 1, so week 1 always holds January 1.
	WeekRuleTraditional
)

// String returns the config token for the rule.
func (r WeekRule) String() string {
	if r == WeekRuleTraditional {
		return "traditional"
	}
	return "four_day"
}

// ParseWeekRule parses a week rule token as spelled in config files and
// command-line flags.
func ParseWeekRule(s string) (WeekRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "four_day", "fourday", "iso":
		return WeekRuleFourDay, nil
	case "traditional":
		return WeekRuleTraditional, nil
	}
	return 0, fmt.Errorf("week rule must be four_day or traditional, got %q", s)
}

// majorityOffset is the in-week index of the day that decides which year a
// week belongs to under the four-day rule. Index 3 is the fourth day, so
// for Monday-first weeks it is the ISO-defining Thursday.
const majorityOffset = 3

// WeekNumber returns the week number of d under rule for weeks starting at
// first.
//
// Under WeekRuleFourDay, early-January dates whose week belongs to the
// previous year return that year's last week number (52 or 53), and
// late-December dates whose week belongs to the next year return 1.
//
// Under WeekRuleTraditional, week 1 is the week containing January 1, and
// December dates sharing a week with the next January 1 return 1.
func WeekNumber(d date.Date, rule WeekRule, first time.Weekday) int {
	if rule == WeekRuleTraditional {
		return traditionalWeek(d, first)
	}
	return fourDayWeek(d, first)
}

func fourDayWeek(d date.Date, first time.Weekday) int {
	doy := d.DayOfYear() - 1
	pos := date.ShiftedWeekday(d.Year, d.Month, d.Day, first)

	// Day-of-year offset of the majority day of d's week. Its sign and
	// magnitude tell us which year the week counts in.
	majority := doy + majorityOffset - pos

	switch {
	case majority < 0:
		prev := d.Year - 1
		return (majority+date.DaysInYear(prev)-firstMajority(prev, first))/7 + 1
	case majority >= date.DaysInYear(d.Year):
		return 1
	default:
		return majority/7 + 1
	}
}

// firstMajority returns the zero-based day-of-year offset of the year's
// first majority day, i.e. the anchor of week 1.
func firstMajority(year int, first time.Weekday) int {
	jan1 := date.ShiftedWeekday(year, 1, 1, first)
	return (7 + majorityOffset - jan1) % 7
}

func traditionalWeek(d date.Date, first time.Weekday) int {
	doy := d.DayOfYear() - 1
	pos := date.ShiftedWeekday(d.Year, d.Month, d.Day, first)

	// A December week that runs into January is week 1 of the next year.
	if doy-pos+6 >= date.DaysInYear(d.Year) {
		return 1
	}
	return (doy+date.ShiftedWeekday(d.Year, 1, 1, first))/7 + 1
}

// WeeksOfMonth returns the distinct week numbers touched by the month,
// probing every seventh day from the 1st, in encounter order. With
// forceSix the probe continues into the following month until six distinct
// numbers are collected, matching the rows of a six-week month grid.
func WeeksOfMonth(year, month int, forceSix bool, rule WeekRule, first time.Weekday) ([]int, error) {
	start, err := date.New(year, month, 1)
	if err != nil {
		return nil, err
	}

	var weeks []int
	seen := make(map[int]bool)
	add := func(d date.Date) {
		n := WeekNumber(d, rule, first)
		if !seen[n] {
			seen[n] = true
			weeks = append(weeks, n)
		}
	}

	days := date.DaysInMonth(year, month)
	for k := 0; k*7 < days; k++ {
		add(start.AddDays(k * 7))
	}
	if forceSix {
		// Keep the same seven-day stride past the end of the month.
		// Numbers repeat at most once across a year boundary, so each
		// extra probe makes progress and the loop terminates.
		for k := (days + 6) / 7; len(weeks) < 6; k++ {
			add(start.AddDays(k * 7))
		}
	}
	return weeks, nil
}
