// Package dateutil provides pure calendar arithmetic for the month and week
// views: grid generation, time slots, event span math, and the comparison
// and formatting helpers the rest of the app renders with.
//
// Weeks start on Sunday. All helpers work on the local calendar day of the
// times they receive and never consult the wall clock except IsToday.
package dateutil

import "time"

const minutesPerDay = 24 * 60

// DefaultMinimumSpan is the floor applied to an event's visual duration when
// positioning it in a day column, so instantaneous or very short events
// still render as a visible block.
const DefaultMinimumSpan = 30 * time.Minute

// TruncateToDay returns t with the time of day set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns the Sunday of the week containing t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns the Saturday of the week containing t, at midnight.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// StartOfMonth returns the first day of t's month, at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month, at midnight.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// MonthGrid returns the week-aligned sequence of days covering t's month:
// from the Sunday on or before the 1st through the Saturday on or after the
// last day. The length is always a multiple of 7 (28, 35, or 42).
func MonthGrid(t time.Time) []time.Time {
	start := StartOfWeek(StartOfMonth(t))
	end := EndOfWeek(EndOfMonth(t))

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekGrid returns the seven days, Sunday through Saturday, of the week
// containing t.
func WeekGrid(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// TimeSlots returns the time-of-day boundaries of day from 00:00 up to but
// not including 24:00, spaced interval minutes apart. Intervals that divide
// 60 keep the slots aligned with hour boundaries; that alignment is assumed
// by the week view but not enforced here. Non-positive intervals fall back
// to 60.
func TimeSlots(day time.Time, interval int) []time.Time {
	if interval <= 0 {
		interval = 60
	}
	year, month, d := day.Date()

	slots := make([]time.Time, 0, minutesPerDay/interval)
	for m := 0; m < minutesPerDay; m += interval {
		slots = append(slots, time.Date(year, month, d, m/60, m%60, 0, 0, day.Location()))
	}
	return slots
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// IsToday reports whether t falls on the current local calendar day.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// AddMonths adds n calendar months to t, clamping the day of month to the
// length of the target month: Jan 31 plus one month is Feb 28 (or 29), not
// Mar 2. The time of day is preserved.
func AddMonths(t time.Time, n int) time.Time {
	// Shift the first of the month; day 1 can never overflow.
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, n, 0)

	day := t.Day()
	if last := daysInMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in t's month. Day zero of the
// following month normalizes to the last day of this one.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// NextMonth returns t advanced by one calendar month.
func NextMonth(t time.Time) time.Time { return AddMonths(t, 1) }

// PreviousMonth returns t moved back by one calendar month.
func PreviousMonth(t time.Time) time.Time { return AddMonths(t, -1) }

// NextWeek returns t advanced by seven days.
func NextWeek(t time.Time) time.Time { return t.AddDate(0, 0, 7) }

// PreviousWeek returns t moved back by seven days.
func PreviousWeek(t time.Time) time.Time { return t.AddDate(0, 0, -7) }

// Span positions an event inside a 24-hour day column. Offset is the
// fractional distance from midnight to the event's clipped start; Height is
// the fractional height of its clipped duration. Both are in [0, 1].
type Span struct {
	Offset float64
	Height float64
}

// VerticalSpan clips [start, end] to day's 24-hour bounds and converts the
// result to minutes-of-day fractions. minimum is a floor on the visual
// duration (use DefaultMinimumSpan; zero disables it). Events that do not
// intersect the day yield the zero Span.
func VerticalSpan(start, end, day time.Time, minimum time.Duration) Span {
	dayStart := TruncateToDay(day)
	dayEnd := EndOfDay(day)

	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}
	if end.Before(start) {
		return Span{}
	}

	startMinutes := float64(start.Hour()*60 + start.Minute())
	endMinutes := float64(end.Hour()*60 + end.Minute())

	height := endMinutes - startMinutes
	if floor := minimum.Minutes(); height < floor {
		height = floor
	}

	return Span{
		Offset: startMinutes / minutesPerDay,
		Height: height / minutesPerDay,
	}
}
