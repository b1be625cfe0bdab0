package event

import "time"

// Hooks are the outbound notifications fired after each successful
// mutation. Nil funcs are skipped; return values are not consumed.
//
// OnUpdated deliberately receives the patch that was applied, not the merged
// event. Hosts that persist deltas depend on that asymmetry with OnAdded,
// which gets the full finalized event.
type Hooks struct {
	OnAdded   func(Event)
	OnUpdated func(id string, patch Patch)
	OnDeleted func(id string)
}

// Manager owns the store and guards every mutation: validate, then mutate,
// then notify, with no partial writes on failure. Reads go through Events,
// Find, and OnDay.
type Manager struct {
	store *Store
	hooks Hooks
}

// NewManager builds a manager over a fresh store seeded with the initial
// events. Initial events are trusted as-is and do not fire hooks.
func NewManager(initial []Event, hooks Hooks) *Manager {
	return &Manager{store: NewStore(initial), hooks: hooks}
}

// Events returns a snapshot of the current events in insertion order.
func (m *Manager) Events() []*Event {
	return m.store.Events()
}

// Len returns the number of stored events.
func (m *Manager) Len() int {
	return m.store.Len()
}

// Find returns the stored event with the given id, or nil.
func (m *Manager) Find(id string) *Event {
	return m.store.Find(id)
}

// OnDay returns the stored events touching the given calendar day, sorted
// by start time.
func (m *Manager) OnDay(day time.Time) []*Event {
	return OnDay(m.store.Events(), day)
}

// Add validates the draft and, on success, assigns a fresh id, resolves the
// default color, appends the event, and notifies OnAdded with the finalized
// event. On validation failure it returns a *ValidationError and the store
// is untouched.
func (m *Manager) Add(d Draft) (*Event, error) {
	candidate := Event{
		Title:       d.Title,
		Description: d.Description,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Color:       d.Color,
		Category:    d.Category,
	}
	if violations := Validate(candidate); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	candidate.ID = NewID()
	if candidate.Color == "" {
		candidate.Color = DefaultColor
	}

	created := &candidate
	m.store.append(created)
	if m.hooks.OnAdded != nil {
		m.hooks.OnAdded(*created)
	}
	return created, nil
}

// Update merges the patch onto the stored event and validates the merged
// whole; the update is all-or-nothing. On success the stored event is
// replaced and OnUpdated is notified with the id and the patch (the delta,
// not the merged result). Returns ErrNotFound when no event matches, or a
// *ValidationError when the merged event is invalid; in both cases nothing
// is mutated and no hook fires.
func (m *Manager) Update(id string, patch Patch) (*Event, error) {
	existing := m.store.Find(id)
	if existing == nil {
		return nil, ErrNotFound
	}

	merged := patch.apply(*existing)
	if violations := Validate(merged); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	m.store.replace(id, &merged)
	if m.hooks.OnUpdated != nil {
		m.hooks.OnUpdated(id, patch)
	}
	return &merged, nil
}

// Delete removes the event with the given id if present. A missing id is a
// no-op, not an error, and OnDeleted is notified either way, so deletes are
// idempotent from the caller's side.
func (m *Manager) Delete(id string) {
	m.store.remove(id)
	if m.hooks.OnDeleted != nil {
		m.hooks.OnDeleted(id)
	}
}
