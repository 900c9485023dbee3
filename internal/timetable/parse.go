// Package timetable turns the pasted schedule dump of the university portal
// into course records and maps them onto the weekly grid.
package timetable

import (
	"strconv"
	"strings"

	"github.com/iceghosttth/bkalendar/internal/model"
)

// fieldCount is the exact number of tab-separated columns in a portal row:
// id, name, credits, group, campus, weekday, period, time, room, teacher,
// weeks. Only six of them carry meaning here; the rest are discarded.
const fieldCount = 11

// Parse splits raw text into lines and keeps every line that is a well-formed
// portal row. Lines with any other column count are dropped silently; that is
// the filter, not an error. Numeric subfields degrade instead of failing:
// a bad weekday becomes 0 and a bad period becomes (0,0), both of which the
// grid later refuses to place, and week tokens that do not parse are dropped.
// Output preserves input order; ids are not deduplicated.
func Parse(raw string) []model.Course {
	var courses []model.Course
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) != fieldCount {
			continue
		}
		courses = append(courses, model.Course{
			ID:      fields[0],
			Name:    fields[1],
			Weekday: parseInt(fields[5]),
			Period:  parsePeriod(fields[6]),
			Room:    fields[8],
			Weeks:   parseWeeks(fields[10]),
		})
	}
	return courses
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parsePeriod reads a "begin-end" pair. Anything that is not exactly two
// dash-separated parts collapses to (0,0).
func parsePeriod(s string) model.Period {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return model.Period{}
	}
	return model.Period{Begin: parseInt(parts[0]), End: parseInt(parts[1])}
}

// parseWeeks reads a "|"-separated week-number list. Unparseable tokens
// (including the empty token a trailing "|" leaves behind) are dropped, not
// defaulted, so the result may be shorter than the token count or empty.
func parseWeeks(s string) []int {
	var weeks []int
	for _, token := range strings.Split(s, "|") {
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		weeks = append(weeks, n)
	}
	return weeks
}
