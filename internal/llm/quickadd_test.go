package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// fakeClient returns a canned response and records the prompt it saw.
type fakeClient struct {
	response string
	prompt   string
}

func (f *fakeClient) Chat(_ context.Context, messages []Message) (string, error) {
	if len(messages) > 0 {
		f.prompt = messages[0].Content
	}
	return f.response, nil
}

func (f *fakeClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	content, err := f.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(extractJSON(content)), result)
}

var now = time.Date(2026, time.August, 28, 15, 0, 0, 0, time.UTC)

func TestParserParse(t *testing.T) {
	t.Run("decodes events and warnings", func(t *testing.T) {
		client := &fakeClient{response: `{
			"events": [
				{"title": "Lunch with Ana", "start": "2026-08-29 12:30", "end": "2026-08-29 13:30", "category": "Personal"}
			],
			"warnings": ["assumed one hour"]
		}`}
		p := NewParser(client, []string{"Work", "Personal"})

		drafts, warnings, err := p.Parse(context.Background(), "lunch with ana tomorrow 12:30", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drafts) != 1 {
			t.Fatalf("got %d drafts, want 1", len(drafts))
		}
		d := drafts[0]
		if d.Title != "Lunch with Ana" || d.Category != "Personal" {
			t.Errorf("draft = %+v", d)
		}
		want := time.Date(2026, time.August, 29, 12, 30, 0, 0, time.Local)
		if !d.StartDate.Equal(want) {
			t.Errorf("start = %v, want %v", d.StartDate, want)
		}
		if len(warnings) != 1 {
			t.Errorf("warnings = %v", warnings)
		}
	})

	t.Run("prompt carries date context", func(t *testing.T) {
		client := &fakeClient{response: `{"events": [], "warnings": []}`}
		p := NewParser(client, []string{"Work"})

		if _, _, err := p.Parse(context.Background(), "standup monday", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"2026-08-28", "2026-08-29", "standup monday", "Work"} {
			if !strings.Contains(client.prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		client := &fakeClient{response: "```json\n{\"events\": [], \"warnings\": [\"nothing to schedule\"]}\n```"}
		p := NewParser(client, nil)

		_, warnings, err := p.Parse(context.Background(), "hmm", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 1 {
			t.Errorf("warnings = %v", warnings)
		}
	})

	t.Run("drops drafts with bad timestamps", func(t *testing.T) {
		client := &fakeClient{response: `{
			"events": [
				{"title": "Broken", "start": "soonish", "end": "later"},
				{"title": "Fine", "start": "2026-08-29 09:00", "end": "2026-08-29 10:00"}
			]
		}`}
		p := NewParser(client, nil)

		drafts, warnings, err := p.Parse(context.Background(), "stuff", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drafts) != 1 || drafts[0].Title != "Fine" {
			t.Errorf("drafts = %+v", drafts)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "Broken") {
			t.Errorf("warnings = %v", warnings)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		p := NewParser(&fakeClient{}, nil)
		if _, _, err := p.Parse(context.Background(), "  ", now); err == nil {
			t.Error("expected error for empty input")
		}
	})
}
