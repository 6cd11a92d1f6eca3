package date

import "time"

// Weekday returns the day of the week for the given date using Zeller's
// congruence, with January and February treated as months 13 and 14 of the
// previous year. The result uses time.Weekday numbering, Sunday=0.
func Weekday(year, month, day int) time.Weekday {
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	f := day + 13*(month+1)/5 + k + k/4 + j/4 + 5*j
	return time.Weekday(((f+6)%7 + 7) % 7)
}

// ShiftedWeekday returns the weekday of the given date re-based so that
// first maps to 0: with first == time.Monday, Monday is 0 and Sunday is 6.
func ShiftedWeekday(year, month, day int, first time.Weekday) int {
	return ((int(Weekday(year, month, day))-int(first))%7 + 7) % 7
}

// Weekday returns the day of the week of d, Sunday=0.
func (d Date) Weekday() time.Weekday {
	return Weekday(d.Year, d.Month, d.Day)
}

// WeekdayISO returns the ISO 8601 weekday number, Monday=1 through Sunday=7.
func (d Date) WeekdayISO() int {
	if wd := int(d.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
