package timetable

import "github.com/iceghosttth/bkalendar/internal/model"

// The weekly grid is addressed by finite integer domains: portal weekdays
// 2..8 map to columns 1..7, periods 1..11 map to rows with a fixed bell
// schedule of 50-minute slots. Out-of-domain values map to the zero entry,
// which renders as hidden.

// weekdayColumns maps the portal's weekday numbering (2=Monday … 8=Sunday)
// to a 1-based grid column. Index 0..1 and anything past 8 are invalid.
var weekdayColumns = [9]int{0, 0, 1, 2, 3, 4, 5, 6, 7}

// periodStarts holds the bell schedule: the start label of each 1-indexed
// 50-minute period of a teaching day.
var periodStarts = [12]string{
	"",
	"06:00", "07:00", "08:00", "09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00", "16:00",
}

var monthNames = [13]string{
	"",
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekdayColumn returns the grid column for a portal weekday, or 0 when the
// weekday is out of the 2..8 domain.
func WeekdayColumn(weekday int) int {
	if weekday < 0 || weekday >= len(weekdayColumns) {
		return 0
	}
	return weekdayColumns[weekday]
}

// PeriodRow returns the 1-based grid row for a period index, or 0 when the
// index is outside 1..11.
func PeriodRow(period int) int {
	if period < 1 || period >= len(periodStarts) {
		return 0
	}
	return period
}

// PeriodStart returns the bell-schedule start label of a period, or "" when
// the index is outside 1..11.
func PeriodStart(period int) string {
	if period < 1 || period >= len(periodStarts) {
		return ""
	}
	return periodStarts[period]
}

// MonthName returns the short English month name for a 1-12 month number,
// or "" outside that domain.
func MonthName(month int) string {
	if month < 1 || month >= len(monthNames) {
		return ""
	}
	return monthNames[month]
}

// Renderable reports whether a course can be placed on the grid at all:
// its weekday must map to a column and its period interval must be a
// non-empty range of valid rows. Parsing never enforces this; placement does.
func Renderable(c model.Course) bool {
	if WeekdayColumn(c.Weekday) == 0 {
		return false
	}
	if c.Period.Begin > c.Period.End {
		return false
	}
	return PeriodRow(c.Period.Begin) != 0 && PeriodRow(c.Period.End) != 0
}
