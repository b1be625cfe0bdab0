package dateutil

import (
	"fmt"
	"time"
)

// Reference layouts shared by the TUI and CLI.
const (
	LayoutDate     = "2006-01-02"
	LayoutTime     = "15:04"
	LayoutDateTime = "2006-01-02 15:04"
)

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format(LayoutDate) }

// FormatTime renders t's time of day as HH:MM.
func FormatTime(t time.Time) string { return t.Format(LayoutTime) }

// FormatDateTime renders t as YYYY-MM-DD HH:MM.
func FormatDateTime(t time.Time) string { return t.Format(LayoutDateTime) }

// FormatDay renders t's day of month without padding.
func FormatDay(t time.Time) string { return t.Format("2") }

// FormatMonthYear renders the month heading, e.g. "January 2026".
func FormatMonthYear(t time.Time) string { return t.Format("January 2006") }

// FormatWeekRange renders the heading for the week containing t,
// e.g. "Jan 4 - Jan 10, 2026".
func FormatWeekRange(t time.Time) string {
	start := StartOfWeek(t)
	end := EndOfWeek(t)
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// ParseDateTime parses either a YYYY-MM-DD HH:MM timestamp or a bare
// YYYY-MM-DD date (interpreted as midnight), in the local timezone.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(LayoutDateTime, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(LayoutDate, s, time.Local)
}
