package calendar

import (
	"time"

	"github.com/username/calgrid/pkg/date"
)

// CellType classifies one slot of a month grid.
type CellType int

const (
	// CellInMonth is a day of the grid's own month.
	CellInMonth CellType = iota + 1
	// CellAdjacent is a day of the previous or next month, shown to fill
	// out the first or last week.
	CellAdjacent
	// CellBlank is a suppressed slot: the position exists but shows no
	// date.
	CellBlank
)

// Cell is one day slot of a month grid. Date is the zero value when Type
// is CellBlank.
type Cell struct {
	Date date.Date
	Type CellType
}

// MonthGrid is a month laid out in weeks of seven days, aligned to a first
// weekday. Every row is full; out-of-month positions are adjacent or blank
// cells.
type MonthGrid struct {
	Year  int
	Month int
	Weeks [][7]Cell
}

// BuildMonthGrid lays out a month in weeks starting at first. Out-of-month
// positions carry the neighboring months' dates when includeAdjacent is
// true and blank cells otherwise. With forceSix the grid is padded to
// exactly six rows so a year of grids keeps a constant height.
func BuildMonthGrid(year, month int, first time.Weekday, includeAdjacent, forceSix bool) (MonthGrid, error) {
	firstOfMonth, err := date.New(year, month, 1)
	if err != nil {
		return MonthGrid{}, err
	}

	lead := date.ShiftedWeekday(year, month, 1, first)
	days := date.DaysInMonth(year, month)
	rows := (lead + days + 6) / 7
	if forceSix {
		rows = 6
	}

	grid := MonthGrid{
		Year:  year,
		Month: month,
		Weeks: make([][7]Cell, rows),
	}
	cursor := firstOfMonth.SubDays(lead)
	for i := 0; i < rows*7; i++ {
		cell := Cell{Type: CellBlank}
		switch {
		case cursor.Year == year && cursor.Month == month:
			cell = Cell{Date: cursor, Type: CellInMonth}
		case includeAdjacent:
			cell = Cell{Date: cursor, Type: CellAdjacent}
		}
		grid.Weeks[i/7][i%7] = cell
		cursor = cursor.AddDays(1)
	}
	return grid, nil
}

// BuildYearGrid returns the twelve month grids of a year in order.
func BuildYearGrid(year int, first time.Weekday, includeAdjacent, forceSix bool) ([]MonthGrid, error) {
	grids := make([]MonthGrid, 0, 12)
	for month := 1; month <= 12; month++ {
		g, err := BuildMonthGrid(year, month, first, includeAdjacent, forceSix)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	return grids, nil
}

// BuildWeekGrid returns days consecutive dates starting at the beginning
// of the week containing d, aligned to first. Non-positive days yields
// nil.
func BuildWeekGrid(d date.Date, days int, first time.Weekday) []date.Date {
	if days <= 0 {
		return nil
	}
	start := d.SubDays(date.ShiftedWeekday(d.Year, d.Month, d.Day, first))
	out := make([]date.Date, days)
	for i := range out {
		out[i] = start.AddDays(i)
	}
	return out
}

// DaysFrom returns count consecutive dates starting at d. With exclusive
// the run stops one day short, covering count-1 days. A non-positive
// effective count yields nil.
func DaysFrom(d date.Date, count int, exclusive bool) []date.Date {
	if exclusive {
		count--
	}
	if count <= 0 {
		return nil
	}
	out := make([]date.Date, count)
	for i := range out {
		out[i] = d.AddDays(i)
	}
	return out
}
