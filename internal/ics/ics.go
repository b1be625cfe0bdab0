// Package ics converts calendar events to and from the iCalendar format,
// for the import and export commands.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"almanac/internal/event"
)

const prodID = "-//almanac//calendar//EN"

// colorProp carries the event display color (RFC 7986 COLOR).
const colorProp = ical.ComponentProperty("COLOR")

// Import parses an ICS payload into event drafts, one per VEVENT. Malformed
// VEVENTs are skipped rather than failing the whole file; their summaries
// are returned as warnings. Recurrence rules are not expanded: a recurring
// VEVENT yields only its base instance.
func Import(r io.Reader) ([]event.Draft, []string, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var (
		drafts   []event.Draft
		warnings []string
	)
	for _, ve := range cal.Events() {
		d, err := importVEvent(ve)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", veLabel(ve), err))
			continue
		}
		drafts = append(drafts, d)
	}

	return drafts, warnings, nil
}

func importVEvent(ve *ical.VEvent) (event.Draft, error) {
	var d event.Draft

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		d.Title = p.Value
	}
	if strings.TrimSpace(d.Title) == "" {
		return d, errors.New("missing SUMMARY")
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return d, fmt.Errorf("reading DTSTART: %w", err)
	}
	d.StartDate = start.Local()

	end, err := ve.GetEndAt()
	if err != nil {
		// DTEND is optional; a missing end makes an instantaneous event.
		end = start
	}
	d.EndDate = end.Local()

	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		d.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		// Multiple categories collapse to the first; the event model keeps
		// a single free-text label.
		d.Category = strings.TrimSpace(strings.SplitN(p.Value, ",", 2)[0])
	}
	if p := ve.GetProperty(colorProp); p != nil {
		d.Color = p.Value
	}

	return d, nil
}

// veLabel names a VEVENT for warnings, preferring summary over UID.
func veLabel(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		return fmt.Sprintf("%q", p.Value)
	}
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		return p.Value
	}
	return "event"
}

// Export writes the events to w as a single VCALENDAR. Event ids become
// UIDs so a later import of the same file round-trips cleanly.
func Export(w io.Writer, events []*event.Event) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	now := time.Now()
	for _, e := range events {
		if e == nil {
			continue
		}
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(e.StartDate)
		ve.SetEndAt(e.EndDate)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Category != "" {
			ve.SetProperty(ical.ComponentPropertyCategories, e.Category)
		}
		if e.Color != "" {
			ve.SetProperty(colorProp, e.Color)
		}
	}

	return cal.SerializeTo(w)
}
