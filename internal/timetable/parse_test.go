package timetable

import (
	"reflect"
	"strings"
	"testing"

	"github.com/iceghosttth/bkalendar/internal/model"
)

// row builds a well-formed 11-column portal row with the meaningful fields
// filled in and the discarded ones dashed out.
func row(id, name, weekday, period, room, weeks string) string {
	return strings.Join([]string{id, name, "-", "-", "-", weekday, period, "-", room, "-", weeks}, "\t")
}

func TestParseSingleRow(t *testing.T) {
	got := Parse(row("C1", "Math", "3", "1-2", "R1", "10|11|"))
	want := []model.Course{{
		ID:      "C1",
		Name:    "Math",
		Weekday: 3,
		Period:  model.Period{Begin: 1, End: 2},
		Room:    "R1",
		Weeks:   []int{10, 11},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseDropsWrongColumnCounts(t *testing.T) {
	raw := strings.Join([]string{
		"too\tfew\tcolumns",
		row("C1", "Math", "2", "1-2", "R1", "10"),
		row("C2", "Physics", "3", "3-4", "R2", "10") + "\textra",
		"",
		row("C3", "Chemistry", "4", "5-6", "R3", "11"),
	}, "\n")

	got := Parse(raw)
	if len(got) != 2 {
		t.Fatalf("Parse kept %d records, want 2", len(got))
	}
	// Order of surviving lines is preserved and neighbors are unaffected.
	if got[0].ID != "C1" || got[1].ID != "C3" {
		t.Fatalf("Parse kept %q, %q; want C1, C3", got[0].ID, got[1].ID)
	}
}

func TestParseWeekdayDefaultsToZero(t *testing.T) {
	got := Parse(row("C1", "Math", "Mon", "1-2", "R1", "10"))
	if len(got) != 1 || got[0].Weekday != 0 {
		t.Fatalf("Parse = %+v, want one record with weekday 0", got)
	}
}

func TestParsePeriodShapes(t *testing.T) {
	cases := []struct {
		in   string
		want model.Period
	}{
		{"2-4", model.Period{Begin: 2, End: 4}},
		{"bad", model.Period{}},
		{"1-2-3", model.Period{}},
		{"x-4", model.Period{Begin: 0, End: 4}},
		{"4-y", model.Period{Begin: 4, End: 0}},
		{"", model.Period{}},
	}
	for _, c := range cases {
		got := Parse(row("C1", "Math", "2", c.in, "R1", "10"))
		if len(got) != 1 {
			t.Fatalf("period %q: record dropped", c.in)
		}
		if got[0].Period != c.want {
			t.Errorf("period %q = %+v, want %+v", c.in, got[0].Period, c.want)
		}
	}
}

func TestParseWeeksDropsBadTokens(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"45|46|47|48|", []int{45, 46, 47, 48}},
		{"10|11", []int{10, 11}},
		{"10|x|12", []int{10, 12}},
		{"", nil},
		{"|", nil},
	}
	for _, c := range cases {
		got := Parse(row("C1", "Math", "2", "1-2", "R1", c.in))
		if len(got) != 1 {
			t.Fatalf("weeks %q: record dropped", c.in)
		}
		if !reflect.DeepEqual(got[0].Weeks, c.want) {
			t.Errorf("weeks %q = %v, want %v", c.in, got[0].Weeks, c.want)
		}
	}
}

func TestParseDoesNotRangeCheck(t *testing.T) {
	// Range validity is the grid's concern, not the parser's: syntactically
	// valid records survive with out-of-domain values intact.
	got := Parse(row("C1", "Math", "99", "7-3", "R1", "10"))
	if len(got) != 1 {
		t.Fatalf("Parse dropped a syntactically valid record")
	}
	if got[0].Weekday != 99 {
		t.Errorf("weekday = %d, want 99 preserved", got[0].Weekday)
	}
	if got[0].Period != (model.Period{Begin: 7, End: 3}) {
		t.Errorf("period = %+v, want (7,3) preserved", got[0].Period)
	}
}

func TestHasWeek(t *testing.T) {
	c := model.Course{Weeks: []int{10, 11}}
	if !c.HasWeek(10) || !c.HasWeek(11) {
		t.Error("HasWeek misses listed weeks")
	}
	if c.HasWeek(12) {
		t.Error("HasWeek matches an unlisted week")
	}
	empty := model.Course{}
	for w := 0; w < 54; w++ {
		if empty.HasWeek(w) {
			t.Fatalf("course with no weeks matched week %d", w)
		}
	}
}
