// Package calendar implements the week arithmetic behind the timetable view:
// ISO-8601 week numbers, weekday resolution and civil dates, computed with
// pure integer math over (milliseconds since the Unix epoch, fixed zone
// offset) pairs. Every function is total; there is no invalid instant or
// zone to reject.
package calendar

// Zone is a fixed zone offset east of UTC, in minutes. The service never
// consults a timezone database; each session carries a single offset.
type Zone int

const UTC Zone = 0

const (
	msPerMinute = 60_000
	msPerDay    = 86_400_000
	msPerWeek   = 7 * msPerDay
)

// AddWeeks shifts an instant by n fixed-width weeks. A week is always exactly
// 7*24h of milliseconds; daylight-saving drift is deliberately ignored.
func AddWeeks(ms int64, n int) int64 {
	return ms + int64(n)*msPerWeek
}

// AddDays shifts an instant by n fixed-width days.
func AddDays(ms int64, n int) int64 {
	return ms + int64(n)*msPerDay
}

// DayOfWeek returns the civil weekday at the instant in the zone, ISO
// ordering: Monday=1 … Sunday=7.
func DayOfWeek(ms int64, zone Zone) int {
	// Day 0 of the epoch (1970-01-01) was a Thursday.
	d := (localDays(ms, zone) + 3) % 7
	if d < 0 {
		d += 7
	}
	return int(d) + 1
}

// CivilDate returns the day-of-month and 1-12 month number at the instant in
// the zone.
func CivilDate(ms int64, zone Zone) (day, month int) {
	_, m, d := civilFromDays(localDays(ms, zone))
	return d, m
}

// ISOWeekNumber returns the ISO-8601 week-of-year index of the instant in the
// zone: week 1 is the week containing the year's first Thursday.
func ISOWeekNumber(ms int64, zone Zone) int {
	days := localDays(ms, zone)
	y, m, d := civilFromDays(days)
	doy := dayOfYear(y, m, d)
	dow := DayOfWeek(ms, zone)

	// doy-dow+10 >= 4, so truncating division is the floor here.
	w := (doy - dow + 10) / 7
	if w < 1 {
		// The first days of January can fall in the last week of the
		// previous year. Only the total week count of that year is
		// needed; the weekday stays the current instant's.
		return WeeksInYear(y - 1)
	}
	if w > WeeksInYear(y) {
		return 1
	}
	return w
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in year y. A year has
// 53 weeks exactly when it starts or ends on a Thursday.
func WeeksInYear(y int) int {
	if weekdayShift(y) == 4 || weekdayShift(y-1) == 3 {
		return 53
	}
	return 52
}

// weekdayShift is the p(y) helper of the ISO 53-week rule.
func weekdayShift(y int) int {
	return (y + y/4 - y/100 + y/400) % 7
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// daysBeforeMonth[m] is the ordinal day count before month m in a common
// year; February contributes a 29th day in leap years.
var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func dayOfYear(y, m, d int) int {
	doy := daysBeforeMonth[m] + d
	if m > 2 && isLeapYear(y) {
		doy++
	}
	return doy
}

// EpochDay returns the whole civil day since the epoch at the instant in the
// zone. Unlike the ISO week number it never repeats, so it works as a cache
// key component across year boundaries.
func EpochDay(ms int64, zone Zone) int64 {
	return localDays(ms, zone)
}

// localDays converts an instant to whole civil days since the epoch, as
// observed in the zone.
func localDays(ms int64, zone Zone) int64 {
	return floorDiv(ms+int64(zone)*msPerMinute, msPerDay)
}

// civilFromDays converts days-since-epoch to a proleptic Gregorian
// (year, month, day). Era-based conversion over 400-year cycles.
func civilFromDays(days int64) (year, month, day int) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // [0, 365]
	mp := (5*doy + 2) / 153                                // [0, 11]
	d := doy - (153*mp+2)/5 + 1                            // [1, 31]
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
