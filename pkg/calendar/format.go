package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/username/calgrid/internal/memo"
	"github.com/username/calgrid/pkg/date"
	"github.com/username/calgrid/pkg/locale"
)

// fmtOp identifies one placeholder kind of a format pattern.
type fmtOp int

const (
	opLiteral fmtOp = iota
	opISODate
	opYearFull
	opYearPad
	opYearBare
	opMonthPad
	opMonthBare
	opDayPad
	opDayBare
	opMonthFull
	opMonthAbbr
	opMonthShort
	opWeekdayFull
	opWeekdayAbbr
	opWeekdayShort
	opYearDayPad
	opYearDayBare
	opWeekdayISO
	opWeekdayNum
)

// spellings maps pattern text to ops in parsing preference order: the
// dashed three-character forms come first so %-y can never be read as a
// dash followed by %y. Do not re-order.
var spellings = []struct {
	op   fmtOp
	text string
}{
	{opYearBare, "%-y"},
	{opMonthBare, "%-m"},
	{opDayBare, "%-d"},
	{opMonthShort, "%-b"},
	{opWeekdayShort, "%-a"},
	{opYearDayBare, "%-j"},
	{opISODate, "%F"},
	{opYearFull, "%Y"},
	{opYearPad, "%y"},
	{opMonthPad, "%m"},
	{opDayPad, "%d"},
	{opMonthFull, "%B"},
	{opMonthAbbr, "%b"},
	{opWeekdayFull, "%A"},
	{opWeekdayAbbr, "%a"},
	{opYearDayPad, "%j"},
	{opWeekdayISO, "%u"},
	{opWeekdayNum, "%w"},
}

// inst is one step of a compiled pattern: a placeholder substitution, or
// for opLiteral a run of text copied through unchanged.
type inst struct {
	op  fmtOp
	lit string
}

// compile turns a pattern into a flat instruction list in one
// left-to-right scan. Unrecognized % sequences stay literal text.
func compile(pattern string) []inst {
	var (
		prog []inst
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			prog = append(prog, inst{op: opLiteral, lit: lit.String()})
			lit.Reset()
		}
	}

scan:
	for i := 0; i < len(pattern); {
		if pattern[i] != '%' {
			lit.WriteByte(pattern[i])
			i++
			continue
		}
		for _, s := range spellings {
			if strings.HasPrefix(pattern[i:], s.text) {
				flush()
				prog = append(prog, inst{op: s.op})
				i += len(s.text)
				continue scan
			}
		}
		lit.WriteByte(pattern[i])
		i++
	}
	flush()
	return prog
}

// patterns caches compiled format patterns.
var patterns = memo.New[string, []inst](256)

// Format renders d according to a pattern of % placeholders, looking month
// and weekday names up in loc. Placeholders are matched in a single
// left-to-right pass and substituted independently; unrecognized %
// sequences pass through as literal text.
//
// Recognized placeholders:
//
//	%F          ISO date, 2023-12-03
//	%Y %y %-y   year: full, two-digit padded, two-digit bare
//	%m %-m      month number, padded and bare
//	%d %-d      day of month, padded and bare
//	%B %b %-b   month name: full, abbreviated, short
//	%A %a %-a   weekday name: full, abbreviated, short
//	%j %-j      day of year, padded and bare
//	%u          weekday number, Monday=1 .. Sunday=7
//	%w          weekday number, Sunday=0 .. Saturday=6
func Format(d date.Date, pattern string, loc *locale.Locale) string {
	var b strings.Builder
	for _, in := range patterns.Get(pattern, compile) {
		b.WriteString(eval(in, d, loc))
	}
	return b.String()
}

// eval computes the substitution for one instruction.
func eval(in inst, d date.Date, loc *locale.Locale) string {
	switch in.op {
	case opLiteral:
		return in.lit
	case opISODate:
		return d.String()
	case opYearFull:
		return strconv.Itoa(d.Year)
	case opYearPad:
		return fmt.Sprintf("%02d", yearOfCentury(d.Year))
	case opYearBare:
		return strconv.Itoa(yearOfCentury(d.Year))
	case opMonthPad:
		return fmt.Sprintf("%02d", d.Month)
	case opMonthBare:
		return strconv.Itoa(d.Month)
	case opDayPad:
		return fmt.Sprintf("%02d", d.Day)
	case opDayBare:
		return strconv.Itoa(d.Day)
	case opMonthFull:
		return loc.MonthName(d.Month, locale.FormFull)
	case opMonthAbbr:
		return loc.MonthName(d.Month, locale.FormAbbr)
	case opMonthShort:
		return loc.MonthName(d.Month, locale.FormShort)
	case opWeekdayFull:
		return loc.WeekdayName(d.Weekday(), locale.FormFull)
	case opWeekdayAbbr:
		return loc.WeekdayName(d.Weekday(), locale.FormAbbr)
	case opWeekdayShort:
		return loc.WeekdayName(d.Weekday(), locale.FormShort)
	case opYearDayPad:
		return fmt.Sprintf("%03d", d.DayOfYear())
	case opYearDayBare:
		return strconv.Itoa(d.DayOfYear())
	case opWeekdayISO:
		return strconv.Itoa(d.WeekdayISO())
	case opWeekdayNum:
		return strconv.Itoa(int(d.Weekday()))
	}
	return ""
}

func yearOfCentury(year int) int {
	return ((year % 100) + 100) % 100
}

// UnknownPlaceholderError reports a % sequence that is not a recognized
// placeholder.
type UnknownPlaceholderError struct {
	Pattern     string
	Placeholder string
	Offset      int
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown placeholder %q at offset %d in pattern %q", e.Placeholder, e.Offset, e.Pattern)
}

// CheckPattern reports the first unrecognized % sequence in pattern as an
// *UnknownPlaceholderError, or nil when every % starts a recognized
// placeholder. Format itself never fails; CheckPattern is for callers that
// want to reject a pattern up front instead of passing typos through.
func CheckPattern(pattern string) error {
	for i := 0; i < len(pattern); {
		if pattern[i] != '%' {
			i++
			continue
		}
		matched := false
		for _, s := range spellings {
			if strings.HasPrefix(pattern[i:], s.text) {
				i += len(s.text)
				matched = true
				break
			}
		}
		if !matched {
			end := i + 2
			if strings.HasPrefix(pattern[i:], "%-") {
				end++
			}
			if end > len(pattern) {
				end = len(pattern)
			}
			return &UnknownPlaceholderError{
				Pattern:     pattern,
				Placeholder: pattern[i:end],
				Offset:      i,
			}
		}
	}
	return nil
}

// DefaultPattern builds the locale's default numeric date pattern from its
// field order and divider, with a four-digit or two-digit year.
func DefaultPattern(loc *locale.Locale, fourDigitYear bool) string {
	year := "%y"
	if fourDigitYear {
		year = "%Y"
	}
	var fields [3]string
	switch loc.FieldOrder {
	case locale.OrderDMY:
		fields = [3]string{"%d", "%m", year}
	case locale.OrderMDY:
		fields = [3]string{"%m", "%d", year}
	case locale.OrderYDM:
		fields = [3]string{year, "%d", "%m"}
	default:
		fields = [3]string{year, "%m", "%d"}
	}
	return strings.Join(fields[:], loc.Divider)
}

// FormatDefault renders d with the locale's default pattern.
func FormatDefault(d date.Date, fourDigitYear bool, loc *locale.Locale) string {
	return Format(d, DefaultPattern(loc, fourDigitYear), loc)
}
