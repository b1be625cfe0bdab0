package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"almanac/internal/dateutil"
	"almanac/internal/event"
)

// renderMonth draws the month grid: a weekday heading and one row of day
// cells per calendar week. The grid spans whole weeks, so leading and
// trailing days belong to the adjacent months and render muted.
func (m Model) renderMonth() string {
	anchor := m.cal.CurrentDate()
	grid := dateutil.MonthGrid(anchor)
	weeks := len(grid) / 7

	colW := m.width / 7
	if colW < minColWidth {
		colW = minColWidth
	}
	cellH := (m.bodyHeight() - 1) / weeks
	if cellH < 1 {
		cellH = 1
	}

	heading := make([]string, 0, 7)
	today := m.nowFunc()
	for i := 0; i < 7; i++ {
		style := m.styles.WeekdayStyle
		if grid[i].Weekday() == today.Weekday() && dateutil.SameMonth(anchor, today) {
			style = m.styles.WeekdayTodayStyle
		}
		heading = append(heading, style.Width(colW).Render(grid[i].Format("Mon")))
	}

	rows := make([]string, 0, weeks+1)
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, heading...))
	for w := 0; w < weeks; w++ {
		cells := make([]string, 0, 7)
		for d := 0; d < 7; d++ {
			cells = append(cells, m.renderDayCell(grid[w*7+d], anchor, colW, cellH))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDayCell draws one day: the day number followed by event chips, with
// an overflow marker when the cell is too short for every event.
func (m Model) renderDayCell(day, anchor time.Time, w, h int) string {
	numStyle := m.styles.DayStyle
	switch {
	case dateutil.SameDay(day, m.cursor):
		numStyle = m.styles.DaySelectedStyle
	case dateutil.SameDay(day, m.nowFunc()):
		numStyle = m.styles.DayTodayStyle
	case !dateutil.SameMonth(day, anchor):
		numStyle = m.styles.DayOutsideStyle
	}

	lines := make([]string, 0, h)
	lines = append(lines, numStyle.Render(fmt.Sprintf(" %2s ", dateutil.FormatDay(day))))

	events := m.events.OnDay(day)
	selected := m.selectedEvent()
	room := h - 1
	for i, ev := range events {
		if room <= 0 {
			break
		}
		if room == 1 && i < len(events)-1 {
			lines = append(lines, m.styles.MoreStyle.Render(fmt.Sprintf(" +%d more", len(events)-i)))
			break
		}
		lines = append(lines, m.renderEventChip(ev, selected, w))
		room--
	}

	cell := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, cell)
}

func (m Model) renderEventChip(ev, selected *event.Event, w int) string {
	style := m.styles.EventStyle(ev.Color)
	if ev == selected {
		style = style.Reverse(true)
	}
	label := ansi.Truncate(" "+ev.Title, w-1, "…")
	return style.Render(label)
}
