package event

import (
	"strings"
	"unicode/utf8"
)

// Validation failure messages, in rule order.
const (
	MsgTitleRequired  = "Title is required"
	MsgTitleTooLong   = "Title must be less than 100 characters"
	MsgDescTooLong    = "Description must be less than 500 characters"
	MsgStartRequired  = "Start date is required"
	MsgEndRequired    = "End date is required"
	MsgEndBeforeStart = "End date must be after start date"
)

// Validate checks every field rule against the candidate and returns all
// violations in rule order; an empty result means the candidate is valid.
// Rules are not short-circuited. The candidate may be a freshly built draft
// or a stored event merged with a patch; the ID is not inspected.
func Validate(e Event) []string {
	var violations []string

	if strings.TrimSpace(e.Title) == "" {
		violations = append(violations, MsgTitleRequired)
	}
	if e.Title != "" && utf8.RuneCountInString(e.Title) > MaxTitleLen {
		violations = append(violations, MsgTitleTooLong)
	}
	if e.Description != "" && utf8.RuneCountInString(e.Description) > MaxDescriptionLen {
		violations = append(violations, MsgDescTooLong)
	}
	if e.StartDate.IsZero() {
		violations = append(violations, MsgStartRequired)
	}
	if e.EndDate.IsZero() {
		violations = append(violations, MsgEndRequired)
	}
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.StartDate.After(e.EndDate) {
		violations = append(violations, MsgEndBeforeStart)
	}

	return violations
}
