// Package locale holds the display-name tables used when rendering dates:
// weekday and month names in three forms, plus the locale's preferred date
// field order and divider. The built-in English table is the default;
// callers overlay it or swap in their own.
package locale

import (
	"fmt"
	"strings"
	"time"
)

// Form selects which variant of a weekday or month name to use.
type Form int

const (
	FormFull Form = iota
	FormAbbr
	FormShort
)

// FieldOrder is the order of year, month and day fields in the locale's
// default date format.
type FieldOrder int

const (
	OrderYMD FieldOrder = iota
	OrderDMY
	OrderMDY
	OrderYDM
)

// String returns the lowercase order name, e.g. "dmy".
func (o FieldOrder) String() string {
	switch o {
	case OrderYMD:
		return "ymd"
	case OrderDMY:
		return "dmy"
	case OrderMDY:
		return "mdy"
	case OrderYDM:
		return "ydm"
	}
	return fmt.Sprintf("FieldOrder(%d)", int(o))
}

// ParseFieldOrder parses a field order name as used in config and locale
// files.
func ParseFieldOrder(s string) (FieldOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ymd":
		return OrderYMD, nil
	case "dmy":
		return OrderDMY, nil
	case "mdy":
		return OrderMDY, nil
	case "ydm":
		return OrderYDM, nil
	}
	return 0, fmt.Errorf("date field order must be one of ymd, dmy, mdy, ydm, got %q", s)
}

// Locale is one language's name tables. Weekday arrays are indexed by
// time.Weekday (Sunday=0); month arrays by month-1.
type Locale struct {
	Weekdays      [7]string
	WeekdayAbbrs  [7]string
	WeekdayShorts [7]string
	Months        [12]string
	MonthAbbrs    [12]string
	MonthShorts   [12]string
	FieldOrder    FieldOrder
	Divider       string
}

// English returns a fresh copy of the built-in English table. Each call
// allocates anew so callers can overlay it without affecting anyone else.
func English() *Locale {
	return &Locale{
		Weekdays: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		WeekdayAbbrs: [7]string{
			"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
		},
		WeekdayShorts: [7]string{
			"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa",
		},
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthAbbrs: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		MonthShorts: [12]string{
			"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D",
		},
		FieldOrder: OrderMDY,
		Divider:    "/",
	}
}

// Clone returns an independent copy of the locale.
func (l *Locale) Clone() *Locale {
	c := *l
	return &c
}

// WeekdayName returns the name of wd in the requested form, or "" when wd
// is outside Sunday..Saturday.
func (l *Locale) WeekdayName(wd time.Weekday, form Form) string {
	if wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	switch form {
	case FormFull:
		return l.Weekdays[wd]
	case FormAbbr:
		return l.WeekdayAbbrs[wd]
	case FormShort:
		return l.WeekdayShorts[wd]
	}
	return ""
}

// MonthName returns the name of the given month (1..12) in the requested
// form, or "" when month is out of range.
func (l *Locale) MonthName(month int, form Form) string {
	if month < 1 || month > 12 {
		return ""
	}
	switch form {
	case FormFull:
		return l.Months[month-1]
	case FormAbbr:
		return l.MonthAbbrs[month-1]
	case FormShort:
		return l.MonthShorts[month-1]
	}
	return ""
}

// weekdayIndex and monthIndex map the canonical lowercase English names used
// as semantic keys in locale data files.
var weekdayIndex = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,
}

var monthIndex = map[string]int{
	"january": 0, "february": 1, "march": 2, "april": 3,
	"may": 4, "june": 5, "july": 6, "august": 7,
	"september": 8, "october": 9, "november": 10, "december": 11,
}

// splitKey resolves a semantic key like "monday", "abbr_january" or
// "short_december" into its form and base name.
func splitKey(key string) (Form, string) {
	switch {
	case strings.HasPrefix(key, "abbr_"):
		return FormAbbr, strings.TrimPrefix(key, "abbr_")
	case strings.HasPrefix(key, "short_"):
		return FormShort, strings.TrimPrefix(key, "short_")
	}
	return FormFull, key
}

// Lookup returns the display string for a semantic key, reporting whether
// the key is recognized.
func (l *Locale) Lookup(key string) (string, bool) {
	form, name := splitKey(key)
	if i, ok := weekdayIndex[name]; ok {
		return l.WeekdayName(time.Weekday(i), form), true
	}
	if i, ok := monthIndex[name]; ok {
		return l.MonthName(i+1, form), true
	}
	return "", false
}

// SetKey stores a display string under a semantic key, failing when the key
// is not one of the fixed weekday or month keys.
func (l *Locale) SetKey(key, value string) error {
	form, name := splitKey(key)
	if i, ok := weekdayIndex[name]; ok {
		switch form {
		case FormFull:
			l.Weekdays[i] = value
		case FormAbbr:
			l.WeekdayAbbrs[i] = value
		case FormShort:
			l.WeekdayShorts[i] = value
		}
		return nil
	}
	if i, ok := monthIndex[name]; ok {
		switch form {
		case FormFull:
			l.Months[i] = value
		case FormAbbr:
			l.MonthAbbrs[i] = value
		case FormShort:
			l.MonthShorts[i] = value
		}
		return nil
	}
	return fmt.Errorf("unknown locale key %q", key)
}
