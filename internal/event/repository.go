package event

import "context"

// Repository is the persistence boundary for events. The in-memory store is
// canonical while the app runs; a Repository carries events across runs. It
// mirrors the mutation surface of the Manager so its methods can be driven
// directly from Hooks.
type Repository interface {
	// ListEvents returns all persisted events in creation order.
	ListEvents(ctx context.Context) ([]Event, error)

	// CreateEvent persists a finalized event.
	CreateEvent(ctx context.Context, e Event) error

	// UpdateEvent applies a partial update to the event with the given id.
	// Only the non-nil patch fields are written.
	UpdateEvent(ctx context.Context, id string, patch Patch) error

	// DeleteEvent removes the event with the given id; missing ids are a
	// no-op.
	DeleteEvent(ctx context.Context, id string) error

	// Close releases any resources held by the repository.
	Close() error
}
