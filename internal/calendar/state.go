// Package calendar tracks the transient UI state of the widget: the visible
// view and its anchor date, the current selection, and the event modal.
package calendar

import (
	"time"

	"almanac/internal/dateutil"
	"almanac/internal/event"
)

// View selects the period the widget renders.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

// ModalMode says whether the event modal is creating a new event or editing
// an existing one.
type ModalMode string

const (
	ModalCreate ModalMode = "create"
	ModalEdit   ModalMode = "edit"
)

// State is the calendar's UI state machine. Every transition is a total
// function: there is no invalid input and no error state. The machine is
// cyclic and lives for the widget's lifetime.
//
// Invariant: while the modal is open in edit mode the selected event is
// non-nil; in create mode the selected date is set. Closing the modal clears
// both selections.
type State struct {
	current       time.Time
	view          View
	selectedDate  *time.Time
	selectedEvent *event.Event
	modalOpen     bool
	modalMode     ModalMode

	clock func() time.Time
}

// Option configures optional State behavior.
type Option func(*State)

// WithClock overrides the clock consulted by GoToToday and the default
// anchor. Tests pin it to a fixed date.
func WithClock(clock func() time.Time) Option {
	return func(s *State) { s.clock = clock }
}

// New returns a State anchored at anchor with the given view. A zero anchor
// defaults to the current date and an empty view defaults to month. There is
// no selection and the modal is closed.
func New(anchor time.Time, view View, opts ...Option) *State {
	s := &State{
		current:   anchor,
		view:      view,
		modalMode: ModalCreate,
		clock:     time.Now,
	}
	if s.view == "" {
		s.view = ViewMonth
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.current.IsZero() {
		s.current = s.clock()
	}
	return s
}

// CurrentDate returns the anchor date that determines the visible period.
func (s *State) CurrentDate() time.Time { return s.current }

// View returns the active view.
func (s *State) View() View { return s.view }

// SelectedDate returns the selected date, or nil when none is selected.
func (s *State) SelectedDate() *time.Time { return s.selectedDate }

// SelectedEvent returns the event bound to the modal in edit mode, or nil.
func (s *State) SelectedEvent() *event.Event { return s.selectedEvent }

// ModalOpen reports whether the event modal is open.
func (s *State) ModalOpen() bool { return s.modalOpen }

// ModalMode returns the modal's mode. Only meaningful while the modal is
// open; it keeps its last value after closing.
func (s *State) ModalMode() ModalMode { return s.modalMode }

// GoToNext advances the anchor by one month or one week depending on the
// view. Selection and modal state are untouched.
func (s *State) GoToNext() {
	if s.view == ViewWeek {
		s.current = dateutil.NextWeek(s.current)
		return
	}
	s.current = dateutil.NextMonth(s.current)
}

// GoToPrevious retreats the anchor by one month or one week depending on
// the view. Selection and modal state are untouched.
func (s *State) GoToPrevious() {
	if s.view == ViewWeek {
		s.current = dateutil.PreviousWeek(s.current)
		return
	}
	s.current = dateutil.PreviousMonth(s.current)
}

// GoToToday re-anchors on the current date without changing the view.
func (s *State) GoToToday() {
	s.current = s.clock()
}

// SetView switches the view. The anchor is deliberately left unchanged:
// switching from month to week does not jump to the week of a previously
// selected date.
func (s *State) SetView(v View) {
	s.view = v
}

// SelectDate highlights a date, independent of the modal.
func (s *State) SelectDate(d time.Time) {
	s.selectedDate = &d
}

// OpenCreate opens the modal in create mode with d as the date the new
// event defaults into. Any event selection is cleared.
func (s *State) OpenCreate(d time.Time) {
	s.selectedDate = &d
	s.selectedEvent = nil
	s.modalOpen = true
	s.modalMode = ModalCreate
}

// OpenEdit opens the modal in edit mode bound to ev. Any date selection is
// cleared. The binding is a reference into the store's current snapshot,
// not a copy.
func (s *State) OpenEdit(ev *event.Event) {
	s.selectedEvent = ev
	s.selectedDate = nil
	s.modalOpen = true
	s.modalMode = ModalEdit
}

// CloseModal closes the modal and clears both selections, returning the
// machine to its idle shape.
func (s *State) CloseModal() {
	s.modalOpen = false
	s.selectedDate = nil
	s.selectedEvent = nil
}
