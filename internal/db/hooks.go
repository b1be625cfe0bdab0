package db

import (
	"context"

	"almanac/internal/event"
)

// PersistHooks returns manager hooks that mirror every mutation into the
// repository: adds insert the finalized event, updates write only the delta
// the hook receives, and deletes remove by id. The notifications are
// fire-and-forget by contract, so persistence failures are reported through
// onErr (nil to ignore them) rather than back to the mutating caller.
func PersistHooks(repo event.Repository, onErr func(error)) event.Hooks {
	report := func(err error) {
		if err != nil && onErr != nil {
			onErr(err)
		}
	}

	return event.Hooks{
		OnAdded: func(e event.Event) {
			report(repo.CreateEvent(context.Background(), e))
		},
		OnUpdated: func(id string, patch event.Patch) {
			report(repo.UpdateEvent(context.Background(), id, patch))
		},
		OnDeleted: func(id string) {
			report(repo.DeleteEvent(context.Background(), id))
		},
	}
}
