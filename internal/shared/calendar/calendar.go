// Package calendar holds the month arithmetic shared by attendance capture and
// payslip computation. Sunday is the only non-working day.
package calendar

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a civil calendar date without time of day or location, so it can be
// used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) IsWorkday() bool {
	return d.Weekday() != time.Sunday
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// MonthBefore reports whether (year, month) of d is strictly earlier than the one of other.
func (d Date) MonthBefore(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	return d.Month < other.Month
}

// ValidMonth reports whether year and month name a representable Gregorian month.
func ValidMonth(year, month int) bool {
	return year >= 1 && year <= 9999 && month >= 1 && month <= 12
}

// MonthRange returns the first and last day of the month.
func MonthRange(year int, month time.Month) (Date, Date) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DateOf(first), DateOf(last)
}

// MonthDays lists every date of the month in order.
func MonthDays(year int, month time.Month) []Date {
	first, last := MonthRange(year, month)
	days := make([]Date, 0, last.Day)
	for d := 1; d <= last.Day; d++ {
		days = append(days, Date{Year: first.Year, Month: first.Month, Day: d})
	}
	return days
}

// Workdays filters days down to the non-Sundays.
func Workdays(days []Date) []Date {
	out := make([]Date, 0, len(days))
	for _, d := range days {
		if d.IsWorkday() {
			out = append(out, d)
		}
	}
	return out
}

// Cell is one slot of a month grid. Padding cells belong to the neighbouring
// months and carry InMonth == false.
type Cell struct {
	Date    Date
	InMonth bool
}

// MonthGrid lays the month out in full weeks starting on Sunday, padded with
// days of the previous and next month.
func MonthGrid(year int, month time.Month) [][]Cell {
	first, last := MonthRange(year, month)

	start := first.Time().AddDate(0, 0, -int(first.Weekday()))
	end := last.Time().AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var weeks [][]Cell
	var week []Cell
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		d := DateOf(t)
		week = append(week, Cell{Date: d, InMonth: d.Month == month && d.Year == year})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = nil
		}
	}
	return weeks
}
