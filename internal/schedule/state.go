// Package schedule coordinates the timetable core: it owns the single
// (instant, zone) pair and the editor/parsed state of a session, applies the
// save and navigation transitions, and produces week-filtered views.
package schedule

import (
	"github.com/iceghosttth/bkalendar/internal/calendar"
	"github.com/iceghosttth/bkalendar/internal/model"
)

// TimeState is the session's perception of "now": an absolute instant in
// milliseconds plus the fixed zone offset that resolves it to civil time.
// It starts at the epoch in UTC and is only ever replaced wholesale, either
// by the one-shot clock correction or by whole-week jumps.
type TimeState struct {
	Instant int64
	Zone    calendar.Zone
}

// AppState is the closed two-variant state of a session: either the user is
// editing raw text, or a parse has succeeded and the course list is live.
// There are exactly two transitions: save (RawInput → Parsed, re-parsing the
// current text) and re-enter (Parsed → RawInput("")).
type AppState interface {
	appState()
}

// RawInput means no valid parse is being displayed; Text is whatever the
// editor currently holds.
type RawInput struct {
	Text string
}

// Parsed means the course list below is the displayed schedule.
type Parsed struct {
	Courses []model.Course
}

func (RawInput) appState() {}
func (Parsed) appState()   {}
