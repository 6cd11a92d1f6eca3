// Package calendar builds calendar structures on top of plain dates: week
// numbers under configurable rules, month, year and week grids aligned to
// any first weekday, and placeholder-pattern date formatting backed by
// locale name tables.
//
// The Calendar type bundles the shared configuration (first weekday, week
// rule, locale, clock) and exposes every operation against it. The
// package-level functions take the same parameters explicitly for callers
// that do not want a shared configuration object.
package calendar

import (
	"time"

	"github.com/username/calgrid/pkg/date"
	"github.com/username/calgrid/pkg/locale"
)

// Calendar carries the configuration shared by grid, week-number and
// formatting operations. Methods are safe for concurrent use as long as no
// goroutine reconfigures the calendar at the same time.
type Calendar struct {
	firstWeekday time.Weekday
	weekRule     WeekRule
	locale       *locale.Locale
	now          func() time.Time
}

// Option configures a Calendar at construction.
type Option func(*Calendar)

// WithFirstWeekday sets the weekday that starts grid rows and weeks.
func WithFirstWeekday(wd time.Weekday) Option {
	return func(c *Calendar) { c.firstWeekday = wd }
}

// WithWeekRule sets the week-numbering rule.
func WithWeekRule(r WeekRule) Option {
	return func(c *Calendar) { c.weekRule = r }
}

// WithLocale sets the name tables used for formatting. A nil locale keeps
// the English default.
func WithLocale(l *locale.Locale) Option {
	return func(c *Calendar) { c.SetLocale(l) }
}

// WithNow injects the clock behind Today, mainly for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Calendar) {
		if now != nil {
			c.now = now
		}
	}
}

// New returns a Calendar with Sunday-first weeks, the four-day week rule,
// the English locale and the system clock, then applies opts.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		firstWeekday: time.Sunday,
		weekRule:     WeekRuleFourDay,
		locale:       locale.English(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FirstWeekday returns the configured first day of the week.
func (c *Calendar) FirstWeekday() time.Weekday { return c.firstWeekday }

// SetFirstWeekday changes the first day of the week for subsequent calls.
func (c *Calendar) SetFirstWeekday(wd time.Weekday) { c.firstWeekday = wd }

// WeekRule returns the configured week-numbering rule.
func (c *Calendar) WeekRule() WeekRule { return c.weekRule }

// SetWeekRule changes the week-numbering rule.
func (c *Calendar) SetWeekRule(r WeekRule) { c.weekRule = r }

// Locale returns the calendar's locale.
func (c *Calendar) Locale() *locale.Locale { return c.locale }

// SetLocale swaps the locale wholesale. A nil locale resets to English.
func (c *Calendar) SetLocale(l *locale.Locale) {
	if l == nil {
		l = locale.English()
	}
	c.locale = l
}

// Today returns the current date from the calendar's clock.
func (c *Calendar) Today() date.Date {
	return date.FromTime(c.now())
}

// WeekNumber returns d's week number under the calendar's rule.
func (c *Calendar) WeekNumber(d date.Date) int {
	return WeekNumber(d, c.weekRule, c.firstWeekday)
}

// WeeksOfMonth returns the distinct week numbers touched by the month.
func (c *Calendar) WeeksOfMonth(year, month int, forceSix bool) ([]int, error) {
	return WeeksOfMonth(year, month, forceSix, c.weekRule, c.firstWeekday)
}

// MonthGrid lays the month out in weeks aligned to the calendar's first
// weekday.
func (c *Calendar) MonthGrid(year, month int, includeAdjacent, forceSix bool) (MonthGrid, error) {
	return BuildMonthGrid(year, month, c.firstWeekday, includeAdjacent, forceSix)
}

// YearGrid returns the twelve month grids of a year.
func (c *Calendar) YearGrid(year int, includeAdjacent, forceSix bool) ([]MonthGrid, error) {
	return BuildYearGrid(year, c.firstWeekday, includeAdjacent, forceSix)
}

// WeekGrid returns days consecutive dates starting at the beginning of the
// week containing d.
func (c *Calendar) WeekGrid(d date.Date, days int) []date.Date {
	return BuildWeekGrid(d, days, c.firstWeekday)
}

// DaysFrom returns count consecutive dates starting at d, one day short
// when exclusive.
func (c *Calendar) DaysFrom(d date.Date, count int, exclusive bool) []date.Date {
	return DaysFrom(d, count, exclusive)
}

// Format renders d with the pattern using the calendar's locale.
func (c *Calendar) Format(d date.Date, pattern string) string {
	return Format(d, pattern, c.locale)
}

// FormatDefault renders d with the locale's default numeric pattern.
func (c *Calendar) FormatDefault(d date.Date, fourDigitYear bool) string {
	return FormatDefault(d, fourDigitYear, c.locale)
}

// WeekdayName returns wd's name from the calendar's locale.
func (c *Calendar) WeekdayName(wd time.Weekday, form locale.Form) string {
	return c.locale.WeekdayName(wd, form)
}

// MonthName returns the month's name from the calendar's locale.
func (c *Calendar) MonthName(month int, form locale.Form) string {
	return c.locale.MonthName(month, form)
}
