// Package render draws calendar grids as terminal text.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/username/calgrid/pkg/calendar"
	"github.com/username/calgrid/pkg/date"
	"github.com/username/calgrid/pkg/locale"
)

var (
	todayMark    = color.New(color.ReverseVideo)
	adjacentMark = color.New(color.Faint)
)

// Options controls presentation details that are not grid semantics.
type Options struct {
	ShowWeekNumbers bool
	MonthsPerRow    int
	Highlight       date.Date // cell drawn in reverse video; zero disables
}

// Renderer draws grids using a calendar's locale, first weekday and week
// numbering.
type Renderer struct {
	cal  *calendar.Calendar
	opts Options
}

// New returns a Renderer for cal.
func New(cal *calendar.Calendar, opts Options) *Renderer {
	if opts.MonthsPerRow <= 0 {
		opts.MonthsPerRow = 3
	}
	return &Renderer{cal: cal, opts: opts}
}

// Month renders one month with its title and weekday header.
func (r *Renderer) Month(year, month int, includeAdjacent, forceSix bool) (string, error) {
	grid, err := r.cal.MonthGrid(year, month, includeAdjacent, forceSix)
	if err != nil {
		return "", err
	}
	return r.renderGrid(grid, true), nil
}

// Year renders twelve month grids side by side under a year heading.
func (r *Renderer) Year(year int, includeAdjacent, forceSix bool) (string, error) {
	grids, err := r.cal.YearGrid(year, includeAdjacent, forceSix)
	if err != nil {
		return "", err
	}

	perRow := r.opts.MonthsPerRow
	var bands []string
	for start := 0; start < len(grids); start += perRow {
		end := start + perRow
		if end > len(grids) {
			end = len(grids)
		}
		blocks := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if len(blocks) > 0 {
				blocks = append(blocks, "  ")
			}
			blocks = append(blocks, r.renderGrid(grids[i], false))
		}
		bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}

	body := strings.Join(bands, "\n\n")
	return center(strconv.Itoa(year), lipgloss.Width(body)) + "\n\n" + body, nil
}

// Week renders the week containing d as a single labeled row.
func (r *Renderer) Week(d date.Date) string {
	days := r.cal.WeekGrid(d, 7)
	loc := r.cal.Locale()
	cellw := headerCellWidth(loc)

	head := make([]string, 0, 7)
	row := make([]string, 0, 7)
	for i, day := range days {
		wd := (r.cal.FirstWeekday() + time.Weekday(i)) % 7
		head = append(head, runewidth.FillLeft(loc.WeekdayName(wd, locale.FormShort), cellw))
		row = append(row, r.renderCell(calendar.Cell{Date: day, Type: calendar.CellInMonth}, cellw))
	}

	title := fmt.Sprintf("Week %d (%s to %s)",
		r.cal.WeekNumber(days[0]), days[0], days[len(days)-1])
	return strings.Join([]string{
		title,
		strings.Join(head, " "),
		strings.TrimRight(strings.Join(row, " "), " "),
	}, "\n")
}

// renderGrid lays out one grid: centered title, weekday header, then one
// line per week, optionally prefixed with the week number.
func (r *Renderer) renderGrid(grid calendar.MonthGrid, withYear bool) string {
	loc := r.cal.Locale()
	cellw := headerCellWidth(loc)
	gutter := 0
	if r.opts.ShowWeekNumbers {
		gutter = 3
	}
	width := gutter + 7*cellw + 6

	title := loc.MonthName(grid.Month, locale.FormFull)
	if withYear {
		title += " " + strconv.Itoa(grid.Year)
	}

	lines := make([]string, 0, len(grid.Weeks)+2)
	lines = append(lines, center(title, width))

	head := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		wd := (r.cal.FirstWeekday() + time.Weekday(i)) % 7
		head = append(head, runewidth.FillLeft(loc.WeekdayName(wd, locale.FormShort), cellw))
	}
	lines = append(lines, strings.Repeat(" ", gutter)+strings.Join(head, " "))

	for _, week := range grid.Weeks {
		cells := make([]string, 0, 7)
		for _, cell := range week {
			cells = append(cells, r.renderCell(cell, cellw))
		}
		row := strings.Join(cells, " ")
		if gutter > 0 {
			row = r.weekGutter(week) + row
		}
		lines = append(lines, strings.TrimRight(row, " "))
	}

	return strings.Join(lines, "\n")
}

// renderCell pads the day number before coloring; escape codes would
// count toward the pad width.
func (r *Renderer) renderCell(cell calendar.Cell, width int) string {
	if cell.Type == calendar.CellBlank {
		return strings.Repeat(" ", width)
	}
	text := runewidth.FillLeft(strconv.Itoa(cell.Date.Day), width)
	switch {
	case cell.Date == r.opts.Highlight:
		return todayMark.Sprint(text)
	case cell.Type == calendar.CellAdjacent:
		return adjacentMark.Sprint(text)
	}
	return text
}

// weekGutter returns the week number prefix for a row, taken from any
// visible cell. Week numbers are constant across a row because rows and
// numbering share the same first weekday.
func (r *Renderer) weekGutter(week [7]calendar.Cell) string {
	for _, cell := range week {
		if cell.Type != calendar.CellBlank {
			return fmt.Sprintf("%2d ", r.cal.WeekNumber(cell.Date))
		}
	}
	return strings.Repeat(" ", 3)
}

// headerCellWidth sizes day columns to the locale's widest short weekday
// name, at least two columns for day numbers.
func headerCellWidth(loc *locale.Locale) int {
	w := 2
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if n := runewidth.StringWidth(loc.WeekdayName(wd, locale.FormShort)); n > w {
			w = n
		}
	}
	return w
}

func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap/2) + s
}
