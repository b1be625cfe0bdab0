package event

// Store is the canonical, insertion-ordered collection of events. It is
// owned by a Manager; everything else reads snapshots through Events or the
// day queries and never touches the underlying slice.
type Store struct {
	events []*Event
}

// NewStore copies the initial events into a fresh store, preserving order.
func NewStore(initial []Event) *Store {
	s := &Store{}
	for i := range initial {
		e := initial[i]
		s.events = append(s.events, &e)
	}
	return s
}

// Events returns a snapshot of the store in insertion order. The slice is a
// copy, so callers cannot reorder or grow the store through it.
func (s *Store) Events() []*Event {
	out := make([]*Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

// Find returns the stored event with the given id, or nil.
func (s *Store) Find(id string) *Event {
	for _, e := range s.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) append(e *Event) {
	s.events = append(s.events, e)
}

// replace swaps the stored event with a new value under the same id,
// keeping its position. Reports whether a match was found.
func (s *Store) replace(id string, e *Event) bool {
	for i, stored := range s.events {
		if stored.ID == id {
			s.events[i] = e
			return true
		}
	}
	return false
}

// remove deletes the event with the given id, reporting whether one existed.
func (s *Store) remove(id string) bool {
	for i, stored := range s.events {
		if stored.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}
