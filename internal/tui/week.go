package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"almanac/internal/dateutil"
	"almanac/internal/event"
)

// weekCell is one slot of one day column, pointing at the event that covers
// it. head marks the slot where the event's block starts, which is the only
// row that carries its label.
type weekCell struct {
	ev   *event.Event
	head bool
}

// renderWeek draws the week view: a time column and seven day columns, one
// row per time slot. Events occupy the rows their vertical span maps onto,
// with at least one row per event.
func (m Model) renderWeek() string {
	days := dateutil.WeekGrid(m.cal.CurrentDate())
	slots := dateutil.TimeSlots(days[0], m.config.Calendar.SlotMinutes)
	total := len(slots)

	colW := (m.width - timeColWidth) / 7
	if colW < minColWidth {
		colW = minColWidth
	}

	visible := m.weekBodyRows()
	scroll := m.scroll
	if scroll > total-visible {
		scroll = total - visible
	}
	if scroll < 0 {
		scroll = 0
	}

	occ := m.occupancy(days, total)
	selected := m.selectedEvent()

	rows := make([]string, 0, visible+1)
	rows = append(rows, m.renderWeekHeading(days, colW))

	for r := scroll; r < scroll+visible && r < total; r++ {
		cells := make([]string, 0, 8)
		cells = append(cells, m.styles.TimeColumnStyle.Render(dateutil.FormatTime(slots[r])+" "))
		for d := 0; d < 7; d++ {
			cells = append(cells, m.renderSlotCell(occ[r][d], days[d], selected, colW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// occupancy maps each event on each visible day onto the slot rows its
// vertical span covers.
func (m Model) occupancy(days []time.Time, total int) [][7]weekCell {
	occ := make([][7]weekCell, total)
	for d := 0; d < 7; d++ {
		for _, ev := range m.events.OnDay(days[d]) {
			span := dateutil.VerticalSpan(ev.StartDate, ev.EndDate, days[d], dateutil.DefaultMinimumSpan)
			if span.Height == 0 {
				continue
			}
			start := int(span.Offset * float64(total))
			n := int(span.Height*float64(total) + 0.5)
			if n < 1 {
				n = 1
			}
			for r := start; r < start+n && r < total; r++ {
				occ[r][d] = weekCell{ev: ev, head: r == start}
			}
		}
	}
	return occ
}

func (m Model) renderWeekHeading(days []time.Time, colW int) string {
	cells := make([]string, 0, 8)
	cells = append(cells, strings.Repeat(" ", timeColWidth))
	for _, day := range days {
		style := m.styles.WeekdayStyle
		switch {
		case dateutil.SameDay(day, m.cursor):
			style = m.styles.DaySelectedStyle.Align(lipgloss.Center)
		case dateutil.SameDay(day, m.nowFunc()):
			style = m.styles.WeekdayTodayStyle
		}
		cells = append(cells, style.Width(colW).Render(day.Format("Mon 2")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderSlotCell(cell weekCell, day time.Time, selected *event.Event, colW int) string {
	if cell.ev == nil {
		style := m.styles.SlotEmptyStyle
		if dateutil.SameDay(day, m.cursor) {
			style = style.Background(m.styles.colorBgHighlight)
		}
		return style.Width(colW).Render("")
	}

	style := m.styles.EventStyle(cell.ev.Color)
	if cell.ev == selected {
		style = style.Reverse(true)
	}
	label := ""
	if cell.head {
		label = ansi.Truncate(
			" "+dateutil.FormatTime(cell.ev.StartDate)+" "+cell.ev.Title, colW-1, "…")
	}
	return style.Width(colW).Render(label)
}
