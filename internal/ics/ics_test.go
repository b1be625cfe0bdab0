package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"almanac/internal/event"
)

func TestExportImportRoundTrip(t *testing.T) {
	events := []*event.Event{
		{
			ID:          "evt-1",
			Title:       "Design review",
			Description: "Quarterly review",
			StartDate:   time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC),
			Color:       "#10b981",
			Category:    "Work",
		},
		{
			ID:        "evt-2",
			Title:     "Dentist",
			StartDate: time.Date(2026, time.January, 16, 14, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.January, 16, 14, 45, 0, 0, time.UTC),
			Category:  "Health",
		},
	}

	var buf bytes.Buffer
	if err := Export(&buf, events); err != nil {
		t.Fatalf("export: %v", err)
	}

	drafts, warnings, err := Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}

	got := drafts[0]
	if got.Title != "Design review" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Description != "Quarterly review" {
		t.Errorf("description = %q", got.Description)
	}
	if got.Category != "Work" {
		t.Errorf("category = %q", got.Category)
	}
	if got.Color != "#10b981" {
		t.Errorf("color = %q", got.Color)
	}
	if !got.StartDate.Equal(events[0].StartDate) {
		t.Errorf("start = %v, want %v", got.StartDate, events[0].StartDate)
	}
	if !got.EndDate.Equal(events[0].EndDate) {
		t.Errorf("end = %v, want %v", got.EndDate, events[0].EndDate)
	}
}

func TestImportSkipsMalformedEvents(t *testing.T) {
	payload := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:no-summary",
		"DTSTART:20260115T090000Z",
		"DTEND:20260115T100000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:good",
		"SUMMARY:Keep me",
		"DTSTART:20260116T090000Z",
		"DTEND:20260116T100000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, warnings, err := Import(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Title != "Keep me" {
		t.Errorf("drafts = %+v, want only the valid event", drafts)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one for the skipped event", warnings)
	}
}

func TestImportMissingEndFallsBackToStart(t *testing.T) {
	payload := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:open-ended",
		"SUMMARY:Ping",
		"DTSTART:20260115T090000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, _, err := Import(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
	if !drafts[0].EndDate.Equal(drafts[0].StartDate) {
		t.Errorf("end = %v, want start %v", drafts[0].EndDate, drafts[0].StartDate)
	}
}
