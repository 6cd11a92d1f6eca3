package calendar

import (
	"testing"
	"time"

	"github.com/username/calgrid/pkg/date"
)

func TestBuildMonthGridFebruaryLeap(t *testing.T) {
	// February 2024 starts on a Thursday: Monday-first rows lead with
	// three out-of-month positions and the month spans five rows.
	g, err := BuildMonthGrid(2024, 2, time.Monday, false, true)
	if err != nil {
		t.Fatalf("BuildMonthGrid(2024, 2) error: %v", err)
	}
	if len(g.Weeks) != 6 {
		t.Fatalf("forced grid has %d rows, want 6", len(g.Weeks))
	}
	for i := 0; i < 3; i++ {
		if g.Weeks[0][i].Type != CellBlank {
			t.Errorf("row 0 col %d = %v, want blank", i, g.Weeks[0][i].Type)
		}
	}
	if got := g.Weeks[0][3]; got.Type != CellInMonth || got.Date.Day != 1 {
		t.Errorf("row 0 col 3 = %+v, want in-month day 1", got)
	}
	if got := g.Weeks[4][3]; got.Type != CellInMonth || got.Date.Day != 29 {
		t.Errorf("row 4 col 3 = %+v, want in-month day 29", got)
	}
	for i, cell := range g.Weeks[5] {
		if cell.Type != CellBlank || !cell.Date.IsZero() {
			t.Errorf("row 5 col %d = %+v, want zero blank", i, cell)
		}
	}
}

func TestBuildMonthGridAdjacent(t *testing.T) {
	g, err := BuildMonthGrid(2024, 2, time.Monday, true, true)
	if err != nil {
		t.Fatalf("BuildMonthGrid(2024, 2) error: %v", err)
	}
	if got := g.Weeks[0][0]; got.Type != CellAdjacent || got.Date != (date.Date{Year: 2024, Month: 1, Day: 29}) {
		t.Errorf("row 0 col 0 = %+v, want adjacent 2024-01-29", got)
	}
	if got := g.Weeks[4][4]; got.Type != CellAdjacent || got.Date != (date.Date{Year: 2024, Month: 3, Day: 1}) {
		t.Errorf("row 4 col 4 = %+v, want adjacent 2024-03-01", got)
	}
	if got := g.Weeks[5][6]; got.Type != CellAdjacent || got.Date != (date.Date{Year: 2024, Month: 3, Day: 10}) {
		t.Errorf("row 5 col 6 = %+v, want adjacent 2024-03-10", got)
	}
}

func TestBuildMonthGridRows(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		first time.Weekday
		want  int
	}{
		{"four row february", 2021, 2, time.Monday, 4},
		{"five row leap february", 2024, 2, time.Sunday, 5},
		{"six row march", 2024, 3, time.Sunday, 6},
		{"six row december", 2023, 12, time.Sunday, 6},
		{"five row january", 2024, 1, time.Monday, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := BuildMonthGrid(tc.year, tc.month, tc.first, false, false)
			if err != nil {
				t.Fatalf("BuildMonthGrid(%d, %d) error: %v", tc.year, tc.month, err)
			}
			if len(g.Weeks) != tc.want {
				t.Errorf("BuildMonthGrid(%d, %d) has %d rows, want %d", tc.year, tc.month, len(g.Weeks), tc.want)
			}
		})
	}
}

func TestBuildMonthGridShape(t *testing.T) {
	// Whatever the month, in-month cells count the month's days, start at
	// day 1 and sit in one contiguous run.
	for month := 1; month <= 12; month++ {
		g, err := BuildMonthGrid(2023, month, time.Sunday, true, false)
		if err != nil {
			t.Fatalf("BuildMonthGrid(2023, %d) error: %v", month, err)
		}
		var inMonth, firstDay int
		for _, week := range g.Weeks {
			for _, cell := range week {
				if cell.Type == CellInMonth {
					inMonth++
					if firstDay == 0 {
						firstDay = cell.Date.Day
					}
				}
				if cell.Type != CellBlank && !cell.Date.IsValid() {
					t.Errorf("month %d holds invalid date %+v", month, cell.Date)
				}
			}
		}
		if want := date.DaysInMonth(2023, month); inMonth != want {
			t.Errorf("month %d has %d in-month cells, want %d", month, inMonth, want)
		}
		if firstDay != 1 {
			t.Errorf("month %d first in-month day = %d, want 1", month, firstDay)
		}
	}
}

func TestBuildMonthGridInvalid(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, err := BuildMonthGrid(2024, month, time.Sunday, false, false); err == nil {
			t.Errorf("BuildMonthGrid(2024, %d) expected error, got nil", month)
		}
	}
}

func TestBuildYearGrid(t *testing.T) {
	grids, err := BuildYearGrid(2024, time.Sunday, false, true)
	if err != nil {
		t.Fatalf("BuildYearGrid(2024) error: %v", err)
	}
	if len(grids) != 12 {
		t.Fatalf("BuildYearGrid(2024) returned %d grids, want 12", len(grids))
	}
	total := 0
	for i, g := range grids {
		if g.Year != 2024 || g.Month != i+1 {
			t.Errorf("grid %d labeled %d-%d, want 2024-%d", i, g.Year, g.Month, i+1)
		}
		if len(g.Weeks) != 6 {
			t.Errorf("month %d has %d rows, want 6", g.Month, len(g.Weeks))
		}
		for _, week := range g.Weeks {
			for _, cell := range week {
				if cell.Type == CellInMonth {
					total++
				}
			}
		}
	}
	if total != 366 {
		t.Errorf("2024 grids hold %d in-month cells, want 366", total)
	}
}

func TestBuildWeekGrid(t *testing.T) {
	tests := []struct {
		name      string
		d         date.Date
		days      int
		first     time.Weekday
		wantStart date.Date
		wantEnd   date.Date
	}{
		{
			"sunday start on sunday",
			date.Date{Year: 2023, Month: 12, Day: 3}, 7, time.Sunday,
			date.Date{Year: 2023, Month: 12, Day: 3}, date.Date{Year: 2023, Month: 12, Day: 9},
		},
		{
			"monday start rewinds",
			date.Date{Year: 2023, Month: 12, Day: 3}, 7, time.Monday,
			date.Date{Year: 2023, Month: 11, Day: 27}, date.Date{Year: 2023, Month: 12, Day: 3},
		},
		{
			"fortnight",
			date.Date{Year: 2023, Month: 12, Day: 3}, 14, time.Monday,
			date.Date{Year: 2023, Month: 11, Day: 27}, date.Date{Year: 2023, Month: 12, Day: 10},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildWeekGrid(tc.d, tc.days, tc.first)
			if len(got) != tc.days {
				t.Fatalf("BuildWeekGrid(%v, %d) returned %d dates", tc.d, tc.days, len(got))
			}
			if got[0] != tc.wantStart {
				t.Errorf("start = %v, want %v", got[0], tc.wantStart)
			}
			if got[len(got)-1] != tc.wantEnd {
				t.Errorf("end = %v, want %v", got[len(got)-1], tc.wantEnd)
			}
		})
	}

	if got := BuildWeekGrid(date.Date{Year: 2023, Month: 12, Day: 3}, 0, time.Sunday); got != nil {
		t.Errorf("BuildWeekGrid with 0 days = %v, want nil", got)
	}
}

func TestDaysFrom(t *testing.T) {
	start := date.Date{Year: 2023, Month: 12, Day: 30}

	got := DaysFrom(start, 5, false)
	want := []date.Date{
		{Year: 2023, Month: 12, Day: 30},
		{Year: 2023, Month: 12, Day: 31},
		{Year: 2024, Month: 1, Day: 1},
		{Year: 2024, Month: 1, Day: 2},
		{Year: 2024, Month: 1, Day: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("DaysFrom(%v, 5, false) returned %d dates, want %d", start, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DaysFrom[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := DaysFrom(start, 5, true); len(got) != 4 {
		t.Errorf("DaysFrom(%v, 5, true) returned %d dates, want 4", start, len(got))
	}
	if got := DaysFrom(start, 1, true); got != nil {
		t.Errorf("DaysFrom(%v, 1, true) = %v, want nil", start, got)
	}
	if got := DaysFrom(start, 0, false); got != nil {
		t.Errorf("DaysFrom(%v, 0, false) = %v, want nil", start, got)
	}
}
