package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"almanac/internal/calendar"
	"almanac/internal/dateutil"
)

const (
	timeColWidth    = 6
	modalLabelWidth = 12
	minColWidth     = 4
)

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	var body string
	if m.cal.View() == calendar.ViewWeek {
		body = m.renderWeek()
	} else {
		body = m.renderMonth()
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
	base = strings.Join(padLines(base, m.width, m.height), "\n")

	switch m.mode {
	case ModeModal:
		return overlayCenter(base, m.renderFormModal(), m.width, m.height)
	case ModeConfirm:
		return overlayCenter(base, m.renderConfirmModal(), m.width, m.height)
	}
	return base
}

// bodyHeight is the rows left for the grid between header and footer.
func (m Model) bodyHeight() int {
	return m.height - 3
}

// weekBodyRows is the slot rows visible in the week view.
func (m Model) weekBodyRows() int {
	rows := m.bodyHeight() - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) renderHeader() string {
	anchor := m.cal.CurrentDate()
	period := dateutil.FormatMonthYear(anchor)
	if m.cal.View() == calendar.ViewWeek {
		period = dateutil.FormatWeekRange(anchor)
	}

	monthTab := m.styles.ViewTabStyle.Render("Month")
	weekTab := m.styles.ViewTabActiveStyle.Render("Week")
	if m.cal.View() == calendar.ViewMonth {
		monthTab = m.styles.ViewTabActiveStyle.Render("Month")
		weekTab = m.styles.ViewTabStyle.Render("Week")
	}

	left := m.styles.TitleStyle.Render("Almanac") + "  " +
		m.styles.PeriodStyle.Render(period)
	right := monthTab + weekTab

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderFooter() string {
	help := "h/l day  j/k week  H/L period  t today  m/w view  enter open  a add  d delete  y copy  q quit"
	if m.cal.View() == calendar.ViewWeek {
		help = "h/l day  j/k scroll  H/L period  t today  m/w view  tab event  enter open  a add  d delete  q quit"
	}

	status := ""
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if strings.HasPrefix(m.statusMsg, "Error:") {
			style = m.styles.ErrorStyle
		}
		status = style.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		m.styles.HelpStyle.Render(help),
	)
}
