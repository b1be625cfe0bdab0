package event

import (
	"slices"
	"time"

	"almanac/internal/dateutil"
)

// OnDay returns the events whose [StartDate, EndDate] interval touches the
// calendar day of day: either endpoint falls on that day, or the interval
// crosses it. Multi-day events therefore appear on every day they span.
//
// The result is a new slice sorted ascending by StartDate; events with equal
// starts keep their relative insertion order. The input is not mutated.
func OnDay(events []*Event, day time.Time) []*Event {
	dayStart := dateutil.TruncateToDay(day)
	dayEnd := dateutil.EndOfDay(day)

	var out []*Event
	for _, e := range events {
		if e == nil {
			continue
		}
		touches := dateutil.SameDay(e.StartDate, day) ||
			dateutil.SameDay(e.EndDate, day) ||
			(!e.StartDate.After(dayEnd) && !e.EndDate.Before(dayStart))
		if touches {
			out = append(out, e)
		}
	}

	slices.SortStableFunc(out, func(a, b *Event) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return out
}
