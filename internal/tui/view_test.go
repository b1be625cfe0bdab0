package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/event"
)

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestMonthViewRender(t *testing.T) {
	m, _ := newTestModel(t, event.Hooks{}, seedEvent("Standup", 9, 10))

	out := stripANSI(m.View())
	for _, want := range []string{"Almanac", "August 2026", "Sun", "Sat", "29", "Standup"} {
		if !strings.Contains(out, want) {
			t.Errorf("month view missing %q", want)
		}
	}

	// The grid spans whole weeks, so the leading July days show up too.
	if !strings.Contains(out, "26") {
		t.Error("month view should include the trailing July days")
	}
}

func TestWeekViewRender(t *testing.T) {
	m, _ := newTestModel(t, event.Hooks{}, seedEvent("Standup", 9, 10))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 32})
	m = updated.(Model)
	m = press(t, m, "w")

	out := stripANSI(m.View())
	for _, want := range []string{"Sun 23", "Sat 29", "00:00", "Standup"} {
		if !strings.Contains(out, want) {
			t.Errorf("week view missing %q", want)
		}
	}
}

func TestModalRenderOverlaysBase(t *testing.T) {
	m, _ := newTestModel(t, event.Hooks{})
	m = press(t, m, "enter")

	out := stripANSI(m.View())
	for _, want := range []string{"New Event", "Title", "Start", "Category", "Color"} {
		if !strings.Contains(out, want) {
			t.Errorf("form modal missing %q", want)
		}
	}

	if lines := strings.Split(m.View(), "\n"); len(lines) != 32 {
		t.Errorf("overlay changed the frame height: %d lines, want 32", len(lines))
	}
}

func TestConfirmModalRender(t *testing.T) {
	m, _ := newTestModel(t, event.Hooks{}, seedEvent("Standup", 9, 10))
	m = press(t, m, "tab", "d")

	out := stripANSI(m.View())
	for _, want := range []string{"Delete Event", "Standup", "y delete", "n keep"} {
		if !strings.Contains(out, want) {
			t.Errorf("confirm modal missing %q", want)
		}
	}
}

func TestOverlayCenter(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat("aaaaaaaaaa\n", 5), "\n")
	out := overlayCenter(base, "XX\nXX", 10, 5)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[1], "XX") || !strings.Contains(lines[2], "XX") {
		t.Errorf("box not centered vertically:\n%s", out)
	}
	if strings.Contains(lines[0], "X") || strings.Contains(lines[4], "X") {
		t.Error("box leaked outside its rows")
	}
	for i, line := range lines {
		if w := len([]rune(line)); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}
