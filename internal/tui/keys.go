package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/calendar"
	"almanac/internal/dateutil"
	"almanac/internal/event"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeModal:
		return m.handleModalKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "j", "down":
		if m.cal.View() == calendar.ViewWeek {
			m.scroll++
		} else {
			m.moveCursor(7)
		}
	case "k", "up":
		if m.cal.View() == calendar.ViewWeek {
			if m.scroll > 0 {
				m.scroll--
			}
		} else {
			m.moveCursor(-7)
		}

	// Week view scrolling
	case "pgdown", "ctrl+d":
		m.scroll += m.weekBodyRows() / 2
	case "pgup", "ctrl+u":
		m.scroll -= m.weekBodyRows() / 2
		if m.scroll < 0 {
			m.scroll = 0
		}

	// Period navigation
	case "H", "shift+left", "[":
		m.cal.GoToPrevious()
		m.cursor = dateutil.TruncateToDay(m.cal.CurrentDate())
		m.cal.SelectDate(m.cursor)
		m.eventIndex = -1
	case "L", "shift+right", "]":
		m.cal.GoToNext()
		m.cursor = dateutil.TruncateToDay(m.cal.CurrentDate())
		m.cal.SelectDate(m.cursor)
		m.eventIndex = -1
	case "t":
		m.cal.GoToToday()
		m.cursor = dateutil.TruncateToDay(m.nowFunc())
		m.cal.SelectDate(m.cursor)
		m.eventIndex = -1

	// View switching
	case "m":
		m.cal.SetView(calendar.ViewMonth)
	case "w":
		m.cal.SetView(calendar.ViewWeek)

	// Event cycling on the cursor day
	case "tab":
		if n := len(m.cursorEvents()); n > 0 {
			m.eventIndex = (m.eventIndex + 1) % n
		}
	case "shift+tab":
		if n := len(m.cursorEvents()); n > 0 {
			m.eventIndex--
			if m.eventIndex < 0 {
				m.eventIndex = n - 1
			}
		}

	// Modal workflow
	case "enter":
		if ev := m.selectedEvent(); ev != nil {
			m.cal.OpenEdit(ev)
			m.form = newEditForm(m.config, ev)
		} else {
			m.cal.OpenCreate(m.cursor)
			m.form = newCreateForm(m.config, m.cursor)
		}
		m.mode = ModeModal
		return m, textinput.Blink
	case "a":
		m.cal.OpenCreate(m.cursor)
		m.form = newCreateForm(m.config, m.cursor)
		m.mode = ModeModal
		return m, textinput.Blink

	case "d", "x":
		if ev := m.selectedEvent(); ev != nil {
			m.confirming = ev
			m.mode = ModeConfirm
		}

	// Copy the cursor day's agenda
	case "y":
		agenda := m.dayAgenda(m.cursor)
		if err := clipboard.WriteAll(agenda); err != nil {
			m.setStatus(fmt.Sprintf("Error: %v", err))
		} else {
			m.setStatus("Copied agenda for " + dateutil.FormatDate(m.cursor))
		}
		return m, clearStatusAfter(3 * time.Second)
	}

	return m, nil
}

// handleConfirmKeys handles keys while a delete confirmation is pending.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.confirming != nil {
			title := m.confirming.Title
			m.events.Delete(m.confirming.ID)
			m.setStatus("Deleted " + title)
		}
		m.confirming = nil
		m.eventIndex = -1
		m.mode = ModeNormal
		return m, clearStatusAfter(3 * time.Second)
	case "n", "esc", "q":
		m.confirming = nil
		m.mode = ModeNormal
	}
	return m, nil
}

// handleModalKeys handles keys while the event form is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeNormal
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.cal.CloseModal()
		m.form = nil
		m.mode = ModeNormal
		return m, nil

	case "tab", "down":
		m.form.focusNext()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.form.focusPrev()
		return m, textinput.Blink

	case "left", "right":
		if m.form.onPicker() {
			m.form.cycle(msg.String() == "right")
			return m, nil
		}

	case "enter":
		return m.submitForm()
	}

	return m, m.form.update(msg)
}

// submitForm applies the form through the manager and closes the modal on
// success. Violations keep the modal open with the messages displayed.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.form.mode == calendar.ModalEdit {
		patch, violations := m.form.patch()
		if len(violations) > 0 {
			m.form.violations = violations
			return m, nil
		}
		if _, err := m.events.Update(m.form.original.ID, patch); err != nil {
			var verr *event.ValidationError
			if errors.As(err, &verr) {
				m.form.violations = verr.Violations
				return m, nil
			}
			m.setStatus(fmt.Sprintf("Error: %v", err))
			return m, clearStatusAfter(3 * time.Second)
		}
		m.setStatus("Updated " + strings.TrimSpace(m.form.title.Value()))
	} else {
		draft, violations := m.form.draft()
		if len(violations) > 0 {
			m.form.violations = violations
			return m, nil
		}
		created, err := m.events.Add(draft)
		if err != nil {
			var verr *event.ValidationError
			if errors.As(err, &verr) {
				m.form.violations = verr.Violations
				return m, nil
			}
			m.setStatus(fmt.Sprintf("Error: %v", err))
			return m, clearStatusAfter(3 * time.Second)
		}
		m.setStatus("Created " + created.Title)
	}

	m.cal.CloseModal()
	m.form = nil
	m.mode = ModeNormal
	return m, clearStatusAfter(3 * time.Second)
}

// dayAgenda formats the cursor day's events as plain text for the clipboard.
func (m Model) dayAgenda(day time.Time) string {
	var b strings.Builder
	b.WriteString(day.Format("Monday, January 2, 2006"))
	b.WriteString("\n")
	evs := m.events.OnDay(day)
	if len(evs) == 0 {
		b.WriteString("No events\n")
		return b.String()
	}
	for _, ev := range evs {
		fmt.Fprintf(&b, "%s-%s  %s\n",
			dateutil.FormatTime(ev.StartDate),
			dateutil.FormatTime(ev.EndDate),
			ev.Title)
	}
	return b.String()
}
