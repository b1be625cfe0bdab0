package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"almanac/internal/dateutil"
	"almanac/internal/event"
)

const quickAddPrompt = `You are a calendar assistant. Convert the user's request into calendar events and return JSON only.

Context:
- Today: %s (%s)
- Tomorrow: %s (%s)
- Current time: %s

User request: "%s"

Rules:
- Return JSON only (no markdown, no explanation).
- Resolve "today", "tomorrow", and weekday names to concrete dates using the context above.
- Use "YYYY-MM-DD HH:MM" (24-hour) for start and end.
- When the request gives no duration, make the event one hour long.
- When the request gives no time of day, schedule it at 09:00.
- Pick a category from: %s. Leave it empty if none fits.
- Add a warning for anything you had to guess.

Respond with:
{
  "events": [
    {
      "title": "string",
      "description": "string",
      "start": "YYYY-MM-DD HH:MM",
      "end": "YYYY-MM-DD HH:MM",
      "category": "string"
    }
  ],
  "warnings": ["string"]
}`

// quickAddResponse is the JSON shape the prompt asks for.
type quickAddResponse struct {
	Events []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Start       string `json:"start"`
		End         string `json:"end"`
		Category    string `json:"category"`
	} `json:"events"`
	Warnings []string `json:"warnings"`
}

// Parser turns natural-language text into event drafts.
type Parser struct {
	client     Client
	categories []string
}

// NewParser creates a parser over the given chat client. categories are the
// labels the model may assign.
func NewParser(client Client, categories []string) *Parser {
	return &Parser{client: client, categories: categories}
}

// Parse asks the model to interpret input and returns the resulting drafts
// plus any warnings the model raised. Drafts whose timestamps do not parse
// are dropped with a warning; validation of the remaining fields is left to
// the event manager.
func (p *Parser) Parse(ctx context.Context, input string, now time.Time) ([]event.Draft, []string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil, fmt.Errorf("empty request")
	}

	tomorrow := now.AddDate(0, 0, 1)
	prompt := fmt.Sprintf(quickAddPrompt,
		dateutil.FormatDate(now), now.Weekday(),
		dateutil.FormatDate(tomorrow), tomorrow.Weekday(),
		dateutil.FormatTime(now),
		input,
		strings.Join(p.categories, ", "),
	)

	var resp quickAddResponse
	if err := p.client.ChatJSON(ctx, []Message{{Role: "system", Content: prompt}}, &resp); err != nil {
		return nil, nil, fmt.Errorf("quick add: %w", err)
	}

	warnings := resp.Warnings
	var drafts []event.Draft
	for _, e := range resp.Events {
		start, err := dateutil.ParseDateTime(e.Start)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("dropping %q: bad start %q", e.Title, e.Start))
			continue
		}
		end, err := dateutil.ParseDateTime(e.End)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("dropping %q: bad end %q", e.Title, e.End))
			continue
		}
		drafts = append(drafts, event.Draft{
			Title:       e.Title,
			Description: e.Description,
			StartDate:   start,
			EndDate:     end,
			Category:    e.Category,
		})
	}

	return drafts, warnings, nil
}
