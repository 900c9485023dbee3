package schedule

import (
	"fmt"
	"sync"

	"github.com/iceghosttth/bkalendar/internal/calendar"
	"github.com/iceghosttth/bkalendar/internal/model"
	"github.com/iceghosttth/bkalendar/internal/timetable"
)

// SaveSink receives the validated raw text whenever a save transition
// succeeds. The planner never reads persisted state back; the caller supplies
// previously saved text as the initial raw input.
type SaveSink interface {
	SaveRawTimetable(text string) error
}

// SaveSinkFunc adapts a function to the SaveSink interface.
type SaveSinkFunc func(text string) error

func (f SaveSinkFunc) SaveRawTimetable(text string) error { return f(text) }

// Planner owns one session's TimeState/AppState pair. State moves only by
// whole-value replacement through its methods; the mutex keeps those
// replacements atomic when concurrent requests of the same user hit the
// shared session.
type Planner struct {
	mu    sync.Mutex
	time  TimeState
	state AppState
	sink  SaveSink
}

// NewPlanner starts a session at the epoch in UTC with the given editor
// contents (usually the previously saved text, or "" for a fresh session).
// The time stays at that default until a clock correction arrives; if none
// ever does, the session keeps working against epoch-zero rather than
// failing.
func NewPlanner(initialText string, sink SaveSink) *Planner {
	return &Planner{
		time:  TimeState{Instant: 0, Zone: calendar.UTC},
		state: RawInput{Text: initialText},
		sink:  sink,
	}
}

// SetClock applies the asynchronous clock/zone correction as a whole-value
// replacement. Sessions call it once after startup; a repeated correction
// simply wins.
func (p *Planner) SetClock(instant int64, zone calendar.Zone) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.time = TimeState{Instant: instant, Zone: zone}
}

// Time returns the current TimeState snapshot.
func (p *Planner) Time() TimeState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.time
}

// State returns the current AppState variant.
func (p *Planner) State() AppState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Save re-parses text, transitions to Parsed, and emits the text to the save
// sink. The in-memory transition always completes; a sink failure is
// reported so the shell can surface it, but the displayed schedule is
// already the fresh parse.
func (p *Planner) Save(text string) ([]model.Course, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	courses := timetable.Parse(text)
	p.state = Parsed{Courses: courses}
	if p.sink != nil {
		if err := p.sink.SaveRawTimetable(text); err != nil {
			return courses, fmt.Errorf("persist timetable: %w", err)
		}
	}
	return courses, nil
}

// Reenter discards the parsed schedule and returns to an empty editor.
func (p *Planner) Reenter() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = RawInput{Text: ""}
}

// NextWeek advances the session by exactly seven days.
func (p *Planner) NextWeek() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.time = TimeState{Instant: calendar.AddWeeks(p.time.Instant, 1), Zone: p.time.Zone}
}

// PrevWeek moves the session back by exactly seven days.
func (p *Planner) PrevWeek() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.time = TimeState{Instant: calendar.AddWeeks(p.time.Instant, -1), Zone: p.time.Zone}
}

// WeekPage renders the week n weeks away from the session's current week
// without moving the session, and reports the TimeState the page was
// rendered at. Both come from a single snapshot, so the page and its
// timestamp always agree.
func (p *Planner) WeekPage(n int) (WeekView, TimeState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ts := TimeState{Instant: calendar.AddWeeks(p.time.Instant, n), Zone: p.time.Zone}
	var courses []model.Course
	if parsed, ok := p.state.(Parsed); ok {
		courses = parsed.Courses
	}
	return ViewAt(courses, ts.Instant, ts.Zone), ts
}

// View renders the current week. In the RawInput state the view carries the
// week header with no courses, which is exactly what an empty editor shows.
func (p *Planner) View() WeekView {
	v, _ := p.WeekPage(0)
	return v
}
