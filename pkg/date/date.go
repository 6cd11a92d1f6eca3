// Package date provides a calendar-day value type for the proleptic
// Gregorian calendar: validation, comparison, day/month/year arithmetic,
// Julian day numbers, and weekday math via Zeller's congruence.
//
// Dates carry no time of day and no zone. Unless noted otherwise, operations
// assume a valid receiver; results for invalid dates are undefined. Day
// arithmetic is exact within the Gregorian calendar's validity (1582-10-15
// onward); earlier dates are accepted with proleptic semantics.
package date

import (
	"fmt"
	"time"
)

// Date is one calendar day. Fields are exported so a Date doubles as the
// plain {year, month, day} interop record; after direct field mutation the
// owner re-checks with Validate. Arithmetic methods return new values and
// never modify the receiver.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ValidationError reports a year/month/day combination that does not name a
// real calendar day.
type ValidationError struct {
	Year  int
	Month int
	Day   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d", e.Year, e.Month, e.Day)
}

// monthDays is the length of each month in a non-leap year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysBefore[m-1] is the number of days before month m in a non-leap year.
var daysBefore = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// New returns the Date for the given year, month (1..12) and day, or a
// *ValidationError when the combination does not exist, such as a day past
// the month's end or Feb 29 outside a leap year.
func New(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// FromTime returns the calendar date of t, discarding clock time and zone.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Today returns the current date according to the local clock.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a date in ISO YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// String returns the ISO form, e.g. "2023-12-03".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the date at midnight UTC for handing off to code that wants
// a time.Time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Validate returns a *ValidationError when the Date does not name a real
// calendar day, nil otherwise.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return &ValidationError{Year: d.Year, Month: d.Month, Day: d.Day}
	}
	return nil
}

// IsValid reports whether the Date names a real calendar day.
func (d Date) IsValid() bool {
	return d.Validate() == nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// IsLeapYear reports whether year is a leap year under the Gregorian rule:
// divisible by 4 and either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// InLeapYear reports whether the date falls in a leap year.
func (d Date) InLeapYear() bool {
	return IsLeapYear(d.Year)
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 when month is outside 1..12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Equal reports whether d and o name the same day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Compare orders d against o: -1 when earlier, 0 when equal, +1 when later.
func (d Date) Compare(o Date) int {
	switch {
	case d.Before(o):
		return -1
	case d == o:
		return 0
	default:
		return 1
	}
}

// AddDays returns the date n days after d; n may be negative. The result
// follows real month lengths, leap Februaries included.
func (d Date) AddDays(n int) Date {
	return fromJulianDay(d.JulianDayNumber() + n)
}

// SubDays returns the date n days before d.
func (d Date) SubDays(n int) Date {
	return d.AddDays(-n)
}

// AddMonths returns the date n months after d, rolling the year as needed
// and clamping the day to the target month's length, so Jan 31 plus one
// month is Feb 28 or 29. n may be negative.
func (d Date) AddMonths(n int) Date {
	months := d.Year*12 + d.Month - 1 + n
	year := months / 12
	rem := months % 12
	if rem < 0 {
		rem += 12
		year--
	}
	month := rem + 1
	day := d.Day
	if limit := DaysInMonth(year, month); day > limit {
		day = limit
	}
	return Date{Year: year, Month: month, Day: day}
}

// SubMonths returns the date n months before d.
func (d Date) SubMonths(n int) Date {
	return d.AddMonths(-n)
}

// AddYears returns the date n years after d; Feb 29 clamps to Feb 28 when
// the target year is not leap. n may be negative.
func (d Date) AddYears(n int) Date {
	year := d.Year + n
	day := d.Day
	if limit := DaysInMonth(year, d.Month); day > limit {
		day = limit
	}
	return Date{Year: year, Month: d.Month, Day: day}
}

// SubYears returns the date n years before d.
func (d Date) SubYears(n int) Date {
	return d.AddYears(-n)
}

// DayOfYear returns the 1-based ordinal of the date within its year, from 1
// for Jan 1 through 365 or 366 for Dec 31.
func (d Date) DayOfYear() int {
	n := daysBefore[d.Month-1] + d.Day
	if d.Month > 2 && IsLeapYear(d.Year) {
		n++
	}
	return n
}

// JulianDayNumber returns the Julian day number of d, a continuous day
// count suitable for differencing. The conversion applies proleptic
// Gregorian rules throughout.
func (d Date) JulianDayNumber() int {
	a := (14 - d.Month) / 12
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3
	return d.Day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// DaysBetween returns the signed day difference d minus o: negative when d
// is the earlier date.
func (d Date) DaysBetween(o Date) int {
	return d.JulianDayNumber() - o.JulianDayNumber()
}

// fromJulianDay inverts JulianDayNumber.
func fromJulianDay(jdn int) Date {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	e := (4*c + 3) / 1461
	f := c - 1461*e/4
	g := (5*f + 2) / 153
	return Date{
		Year:  100*b + e - 4800 + g/10,
		Month: g + 3 - 12*(g/10),
		Day:   f - (153*g+2)/5 + 1,
	}
}
