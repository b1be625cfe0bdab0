package ui

import (
	"fmt"
	"strings"

	"almanac/internal/dateutil"
	"almanac/internal/event"
)

// printDayHeading writes a date grouping header sized to the terminal.
func printDayHeading(day string) {
	width := termWidth()
	if width > 60 {
		width = 60
	}
	line := day + " "
	if pad := width - len(line); pad > 0 {
		line += strings.Repeat("─", pad)
	}
	fmt.Println(colorHeader.Sprint(line))
}

// eventLine formats one event for list output.
func eventLine(ev *event.Event) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(colorMuted.Sprintf("%s-%s",
		dateutil.FormatTime(ev.StartDate),
		dateutil.FormatTime(ev.EndDate)))
	b.WriteString("  ")
	b.WriteString(colorTitle.Sprint(ev.Title))
	if ev.Category != "" {
		b.WriteString(" ")
		b.WriteString(colorTag.Sprintf("[%s]", ev.Category))
	}
	b.WriteString("  ")
	b.WriteString(colorMuted.Sprint(ev.ID))
	return b.String()
}

// draftLine formats a not-yet-created event for previews.
func draftLine(d event.Draft) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(colorMuted.Sprintf("%s %s-%s",
		dateutil.FormatDate(d.StartDate),
		dateutil.FormatTime(d.StartDate),
		dateutil.FormatTime(d.EndDate)))
	b.WriteString("  ")
	b.WriteString(colorTitle.Sprint(d.Title))
	if d.Category != "" {
		b.WriteString(" ")
		b.WriteString(colorTag.Sprintf("[%s]", d.Category))
	}
	return b.String()
}
