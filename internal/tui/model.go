// Package tui provides the terminal user interface for almanac.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/calendar"
	"almanac/internal/config"
	"almanac/internal/dateutil"
	"almanac/internal/event"
	"almanac/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeModal        // Event form open (create or edit)
	ModeConfirm      // Delete confirmation pending
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	events *event.Manager

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar state (view, anchor, modal)
	cal *calendar.State

	// Interaction state
	mode       Mode
	form       *eventForm
	confirming *event.Event

	cursor     time.Time // selected day
	eventIndex int       // index into the cursor day's events, -1 = none

	// Layout
	width  int
	height int
	scroll int // first visible slot row in week view

	// Transient status line
	statusMsg  string
	statusTime time.Time

	nowFunc func() time.Time
}

// ModelOption configures optional Model behavior.
type ModelOption func(*Model)

// WithNow overrides the model's clock. Tests pin it to a fixed date.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) { m.nowFunc = now }
}

// New creates the TUI model around an event manager and configuration.
func New(cfg *config.Config, events *event.Manager, opts ...ModelOption) Model {
	th, _ := theme.Load(cfg.UI.Theme)

	m := Model{
		config:     cfg,
		events:     events,
		theme:      th,
		styles:     NewStyles(th),
		eventIndex: -1,
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	now := m.nowFunc()
	m.cal = calendar.New(now, calendar.View(cfg.UI.DefaultView),
		calendar.WithClock(m.nowFunc))
	m.cursor = dateutil.TruncateToDay(now)
	m.cal.SelectDate(m.cursor)

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// cursorEvents returns the events on the cursor day, sorted by start time.
func (m Model) cursorEvents() []*event.Event {
	return m.events.OnDay(m.cursor)
}

// selectedEvent returns the event the cursor cycles onto, or nil.
func (m Model) selectedEvent() *event.Event {
	evs := m.cursorEvents()
	if m.eventIndex < 0 || m.eventIndex >= len(evs) {
		return nil
	}
	return evs[m.eventIndex]
}

// visibleRange returns the first and last day shown by the current view.
func (m Model) visibleRange() (time.Time, time.Time) {
	anchor := m.cal.CurrentDate()
	if m.cal.View() == calendar.ViewWeek {
		return dateutil.StartOfWeek(anchor), dateutil.EndOfWeek(anchor)
	}
	return dateutil.StartOfMonth(anchor), dateutil.EndOfMonth(anchor)
}

// moveCursor shifts the selected day, re-anchoring the view when the cursor
// crosses the period boundary.
func (m *Model) moveCursor(days int) {
	m.cursor = m.cursor.AddDate(0, 0, days)
	m.eventIndex = -1
	m.cal.SelectDate(m.cursor)

	first, last := m.visibleRange()
	if m.cursor.Before(first) {
		m.cal.GoToPrevious()
	} else if m.cursor.After(last) {
		m.cal.GoToNext()
	}
}

// setStatus shows a transient message in the footer.
func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = m.nowFunc().Add(3 * time.Second)
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearStatusMsg:
		if m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case persistErrMsg:
		m.setStatus(fmt.Sprintf("Error: %v", msg.err))
		return m, clearStatusAfter(5 * time.Second)
	}

	if m.mode == ModeModal && m.form != nil {
		cmd := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}
