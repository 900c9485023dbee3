package schedule

import (
	"github.com/iceghosttth/bkalendar/internal/calendar"
	"github.com/iceghosttth/bkalendar/internal/model"
	"github.com/iceghosttth/bkalendar/internal/timetable"
)

// DayLabel is one column header of the rendered week: a civil date plus its
// formatting hooks.
type DayLabel struct {
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
}

// Placement is one course positioned on the grid. Column/RowBegin/RowEnd are
// only present for renderable courses; hidden records are filtered out before
// a view is built.
type Placement struct {
	Course    model.Course `json:"course"`
	Column    int          `json:"column"`
	RowBegin  int          `json:"row_begin"`
	RowEnd    int          `json:"row_end"`
	StartTime string       `json:"start_time"`
}

// WeekView is the render-ready snapshot handed to the UI: the ISO week
// number, today's column, the Monday..Sunday date labels, and the courses
// that occur on this week.
type WeekView struct {
	Week    int         `json:"week"`
	Weekday int         `json:"weekday"`
	Days    [7]DayLabel `json:"days"`
	Courses []Placement `json:"courses"`
}

// ViewAt computes the week view of a course list as seen from an instant in
// a zone. It is pure: the planner uses it against its own TimeState, and the
// shared read-only endpoints use it against a caller-supplied clock.
//
// A course is visible when its week list contains the instant's ISO week
// number (an empty list never matches) and it survives the grid's
// renderability check; out-of-range weekday/period values are a designed
// degradation, not an error.
func ViewAt(courses []model.Course, instant int64, zone calendar.Zone) WeekView {
	week := calendar.ISOWeekNumber(instant, zone)
	weekday := calendar.DayOfWeek(instant, zone)

	view := WeekView{Week: week, Weekday: weekday}

	monday := calendar.AddDays(instant, -(weekday - 1))
	for i := 0; i < 7; i++ {
		day, month := calendar.CivilDate(calendar.AddDays(monday, i), zone)
		view.Days[i] = DayLabel{Day: day, Month: month, MonthName: timetable.MonthName(month)}
	}

	for _, c := range courses {
		if !c.HasWeek(week) || !timetable.Renderable(c) {
			continue
		}
		view.Courses = append(view.Courses, Placement{
			Course:    c,
			Column:    timetable.WeekdayColumn(c.Weekday),
			RowBegin:  timetable.PeriodRow(c.Period.Begin),
			RowEnd:    timetable.PeriodRow(c.Period.End),
			StartTime: timetable.PeriodStart(c.Period.Begin),
		})
	}
	return view
}
