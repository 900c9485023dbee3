package model

// Period is a closed interval of 1-indexed class periods. Begin > End or a
// non-positive bound marks the course as non-renderable; the record is still
// kept so a re-parse round-trips the input.
type Period struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// Course is a single scheduled class occurrence pattern parsed from one
// timetable row. Weekday uses the portal's numbering: 2=Monday … 8=Sunday,
// with 0/1 reserved as invalid/unset. Courses are immutable once built;
// re-parsing produces a fresh list.
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Weekday int    `json:"weekday"`
	Period  Period `json:"period"`
	Room    string `json:"room"`
	Weeks   []int  `json:"weeks"`
}

// HasWeek reports whether the course occurs on the given academic week.
// A course with no weeks never matches.
func (c Course) HasWeek(week int) bool {
	for _, w := range c.Weeks {
		if w == week {
			return true
		}
	}
	return false
}
