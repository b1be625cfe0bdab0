// Package event defines the calendar event domain: the event type and its
// field validation, the in-memory store, day queries, and the manager that
// guards every mutation and fires the outbound notifications.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultColor is resolved onto an event at creation time when the draft
// carries no color. It is never re-derived at read sites.
const DefaultColor = "#3b82f6"

// Field constraints.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// ErrNotFound is returned by Update when no stored event matches the id.
var ErrNotFound = errors.New("event not found")

// ValidationError reports every field rule a candidate event violated, in
// rule order, so a form can surface all problems at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// Event is a single calendar entry. ID is assigned by the Manager on
// creation and immutable afterwards. StartDate and EndDate carry both date
// and time of day; StartDate never exceeds EndDate for a stored event.
type Event struct {
	ID          string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Color       string
	Category    string
}

// Duration returns the event's length.
func (e Event) Duration() time.Duration {
	return e.EndDate.Sub(e.StartDate)
}

// Draft holds the fields of an event that has not been created yet.
// Zero-value dates count as missing during validation.
type Draft struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Color       string
	Category    string
}

// Patch is a partial update. Nil fields leave the stored value untouched.
type Patch struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Color       *string
	Category    *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.StartDate == nil &&
		p.EndDate == nil && p.Color == nil && p.Category == nil
}

// apply merges the patch onto a copy of e.
func (p Patch) apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	return e
}

// NewID returns a process-unique event id: a millisecond timestamp plus a
// random suffix. Collisions are not checked; the random suffix makes them
// improbable within a store's lifetime.
func NewID() string {
	return fmt.Sprintf("evt-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
