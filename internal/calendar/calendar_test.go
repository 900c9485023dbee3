package calendar

import (
	"testing"
	"time"
)

func utcMillis(y int, m time.Month, d, hour int) int64 {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC).UnixMilli()
}

func TestDayOfWeek(t *testing.T) {
	cases := []struct {
		y    int
		m    time.Month
		d    int
		want int
	}{
		{1970, time.January, 1, 4}, // epoch day was a Thursday
		{2023, time.October, 2, 1},
		{2023, time.October, 8, 7},
		{2024, time.February, 29, 4},
		{2025, time.December, 31, 3},
	}
	for _, c := range cases {
		got := DayOfWeek(utcMillis(c.y, c.m, c.d, 12), UTC)
		if got != c.want {
			t.Errorf("DayOfWeek(%d-%02d-%02d) = %d, want %d", c.y, c.m, c.d, got, c.want)
		}
	}
}

func TestDayOfWeekZoneShift(t *testing.T) {
	// 23:30 UTC on a Monday is already Tuesday at UTC+7.
	ms := utcMillis(2023, time.October, 2, 23) + 30*60_000
	if got := DayOfWeek(ms, UTC); got != 1 {
		t.Fatalf("DayOfWeek at UTC = %d, want 1", got)
	}
	if got := DayOfWeek(ms, Zone(7*60)); got != 2 {
		t.Fatalf("DayOfWeek at UTC+7 = %d, want 2", got)
	}
}

func TestCivilDate(t *testing.T) {
	day, month := CivilDate(utcMillis(2024, time.February, 29, 12), UTC)
	if day != 29 || month != 2 {
		t.Fatalf("CivilDate = (%d, %d), want (29, 2)", day, month)
	}

	// 18:00 UTC on New Year's Eve is already January 1 at UTC+7.
	ms := utcMillis(2023, time.December, 31, 18)
	day, month = CivilDate(ms, Zone(7*60))
	if day != 1 || month != 1 {
		t.Fatalf("CivilDate at UTC+7 = (%d, %d), want (1, 1)", day, month)
	}
}

func TestEpochDay(t *testing.T) {
	if d := EpochDay(0, UTC); d != 0 {
		t.Fatalf("EpochDay(0, UTC) = %d, want 0", d)
	}
	if d := EpochDay(utcMillis(1970, time.January, 2, 0), UTC); d != 1 {
		t.Fatalf("EpochDay of Jan 2 = %d, want 1", d)
	}

	// 18:00 UTC on New Year's Eve is already the next day at UTC+7.
	ms := utcMillis(2023, time.December, 31, 18)
	if EpochDay(ms, Zone(7*60)) != EpochDay(ms, UTC)+1 {
		t.Fatal("EpochDay must follow the zone's civil day")
	}

	// One instant, one day: same-year ISO weeks repeat, epoch days never do.
	if EpochDay(utcMillis(2023, time.March, 6, 12), UTC) == EpochDay(utcMillis(2024, time.March, 4, 12), UTC) {
		t.Fatal("epoch days of different dates must differ")
	}
}

func TestWeeksInYear(t *testing.T) {
	long := map[int]bool{
		2004: true, 2009: true, 2015: true, 2020: true, 2026: true,
		2014: false, 2016: false, 2021: false, 2023: false, 2024: false,
	}
	for y, want := range long {
		got := WeeksInYear(y)
		if want && got != 53 {
			t.Errorf("WeeksInYear(%d) = %d, want 53", y, got)
		}
		if !want && got != 52 {
			t.Errorf("WeeksInYear(%d) = %d, want 52", y, got)
		}
	}
}

func TestISOWeekNumberPinned(t *testing.T) {
	cases := []struct {
		y    int
		m    time.Month
		d    int
		want int
	}{
		{2015, time.January, 1, 1},   // year starting on Thursday
		{2016, time.January, 1, 53},  // Friday start, previous year had 53 weeks
		{2021, time.January, 1, 53},  // Friday start, 2020 was a 53-week year
		{2022, time.January, 1, 52},  // Saturday start, 2021 had 52 weeks
		{2014, time.December, 29, 1}, // Monday of the week containing Jan 1
		{2020, time.December, 31, 53},
		{2015, time.December, 31, 53},
		{2023, time.June, 15, 24},
	}
	for _, c := range cases {
		got := ISOWeekNumber(utcMillis(c.y, c.m, c.d, 12), UTC)
		if got != c.want {
			t.Errorf("ISOWeekNumber(%d-%02d-%02d) = %d, want %d", c.y, c.m, c.d, got, c.want)
		}
	}
}

func TestISOWeekNumberAgainstStdlib(t *testing.T) {
	// Sweep a decade of days, covering leap years and both 52- and 53-week
	// years, and compare with the standard library's reckoning.
	start := time.Date(2012, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3660; i++ {
		d := start.AddDate(0, 0, i)
		_, want := d.ISOWeek()
		got := ISOWeekNumber(d.UnixMilli(), UTC)
		if got != want {
			t.Fatalf("ISOWeekNumber(%s) = %d, want %d", d.Format("2006-01-02"), got, want)
		}
	}
}

func TestAddWeeksRoundTrip(t *testing.T) {
	instants := []int64{
		0,
		utcMillis(2023, time.October, 2, 9),
		utcMillis(2020, time.December, 31, 23),
		-msPerWeek * 3,
	}
	for _, ms := range instants {
		if got := AddWeeks(AddWeeks(ms, 7), -7); got != ms {
			t.Errorf("AddWeeks round trip: got %d, want %d", got, ms)
		}
	}
}

func TestAddWeeksAdjacency(t *testing.T) {
	// Stepping one week forward moves the week number by exactly one,
	// except across a year boundary where it wraps to 1 (or back to the
	// prior year's max week).
	ms := utcMillis(2023, time.January, 2, 12) // week 1 of 2023
	prevWeek := ISOWeekNumber(ms, UTC)
	if prevWeek != 1 {
		t.Fatalf("anchor week = %d, want 1", prevWeek)
	}
	for i := 0; i < 60; i++ {
		ms = AddWeeks(ms, 1)
		w := ISOWeekNumber(ms, UTC)
		if w != prevWeek+1 && w != 1 {
			t.Fatalf("week jumped from %d to %d", prevWeek, w)
		}
		prevWeek = w
	}
}

func TestAddWeeksBackwardAcrossYearBoundary(t *testing.T) {
	ms := utcMillis(2021, time.January, 4, 12) // Monday, week 1 of 2021
	if w := ISOWeekNumber(ms, UTC); w != 1 {
		t.Fatalf("anchor week = %d, want 1", w)
	}
	back := ISOWeekNumber(AddWeeks(ms, -1), UTC)
	if back != WeeksInYear(2020) {
		t.Fatalf("week before week 1 = %d, want %d", back, WeeksInYear(2020))
	}
}

func TestAddDays(t *testing.T) {
	ms := utcMillis(2023, time.February, 27, 12)
	day, month := CivilDate(AddDays(ms, 2), UTC)
	if day != 1 || month != 3 {
		t.Fatalf("CivilDate after +2d = (%d, %d), want (1, 3)", day, month)
	}
}
