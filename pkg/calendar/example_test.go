package calendar_test

import (
	"fmt"
	"time"

	"github.com/username/calgrid/pkg/calendar"
	"github.com/username/calgrid/pkg/date"
)

func ExampleCalendar_Format() {
	c := calendar.New(calendar.WithFirstWeekday(time.Monday))
	d := date.Date{Year: 2023, Month: 12, Day: 3}

	fmt.Println(c.Format(d, "%A, %-d %B %Y"))
	fmt.Println(c.Format(d, "%F"))
	fmt.Println(c.WeekNumber(d))
	// Output:
	// Sunday, 3 December 2023
	// 2023-12-03
	// 48
}

func ExampleBuildMonthGrid() {
	g, _ := calendar.BuildMonthGrid(2024, 2, time.Monday, false, false)
	for _, week := range g.Weeks {
		days := make([]int, 0, 7)
		for _, cell := range week {
			days = append(days, cell.Date.Day)
		}
		fmt.Println(days)
	}
	// Output:
	// [0 0 0 1 2 3 4]
	// [5 6 7 8 9 10 11]
	// [12 13 14 15 16 17 18]
	// [19 20 21 22 23 24 25]
	// [26 27 28 29 0 0 0]
}
