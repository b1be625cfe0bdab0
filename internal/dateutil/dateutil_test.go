package dateutil

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name    string
		anchor  time.Time
		wantLen int
	}{
		{"six partial weeks", date(2026, time.August, 15), 42},  // Aug 2026 starts Saturday
		{"five weeks", date(2026, time.July, 1), 35},            // Jul 2026 starts Wednesday
		{"exact four weeks", date(2026, time.February, 10), 28}, // Feb 2026 starts Sunday, 28 days
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.anchor)

			if len(grid) != tt.wantLen {
				t.Errorf("got %d days, want %d", len(grid), tt.wantLen)
			}
			if len(grid)%7 != 0 {
				t.Errorf("grid length %d is not a multiple of 7", len(grid))
			}
			if grid[0].Weekday() != time.Sunday {
				t.Errorf("grid starts on %v, want Sunday", grid[0].Weekday())
			}
			if grid[len(grid)-1].Weekday() != time.Saturday {
				t.Errorf("grid ends on %v, want Saturday", grid[len(grid)-1].Weekday())
			}

			// Contiguous, no gaps or duplicates.
			for i := 1; i < len(grid); i++ {
				if !grid[i].Equal(grid[i-1].AddDate(0, 0, 1)) {
					t.Fatalf("grid not contiguous at index %d: %v follows %v", i, grid[i], grid[i-1])
				}
			}

			// Every day of the anchor's month appears exactly once.
			seen := make(map[int]int)
			for _, d := range grid {
				if SameMonth(d, tt.anchor) {
					seen[d.Day()]++
				}
			}
			last := EndOfMonth(tt.anchor).Day()
			for day := 1; day <= last; day++ {
				if seen[day] != 1 {
					t.Errorf("day %d of month appears %d times, want 1", day, seen[day])
				}
			}
		})
	}
}

func TestWeekGrid(t *testing.T) {
	anchor := date(2026, time.August, 26) // a Wednesday
	grid := WeekGrid(anchor)

	if len(grid) != 7 {
		t.Fatalf("got %d days, want 7", len(grid))
	}
	if grid[0].Weekday() != time.Sunday {
		t.Errorf("week starts on %v, want Sunday", grid[0].Weekday())
	}
	if grid[6].Weekday() != time.Saturday {
		t.Errorf("week ends on %v, want Saturday", grid[6].Weekday())
	}

	found := false
	for _, d := range grid {
		if SameDay(d, anchor) {
			found = true
		}
	}
	if !found {
		t.Errorf("week grid does not contain anchor %v", anchor)
	}
}

func TestTimeSlots(t *testing.T) {
	day := date(2026, time.January, 15)

	t.Run("hourly", func(t *testing.T) {
		slots := TimeSlots(day, 60)
		if len(slots) != 24 {
			t.Fatalf("got %d slots, want 24", len(slots))
		}
		if got := FormatTime(slots[0]); got != "00:00" {
			t.Errorf("first slot %s, want 00:00", got)
		}
		if got := FormatTime(slots[23]); got != "23:00" {
			t.Errorf("last slot %s, want 23:00", got)
		}
	})

	t.Run("half hour", func(t *testing.T) {
		slots := TimeSlots(day, 30)
		if len(slots) != 48 {
			t.Fatalf("got %d slots, want 48", len(slots))
		}
		if got := FormatTime(slots[1]); got != "00:30" {
			t.Errorf("second slot %s, want 00:30", got)
		}
	})

	t.Run("invalid interval falls back to hourly", func(t *testing.T) {
		if got := len(TimeSlots(day, 0)); got != 24 {
			t.Errorf("got %d slots, want 24", got)
		}
	})
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"plain", date(2026, time.March, 10), 1, date(2026, time.April, 10)},
		{"jan 31 clamps to feb 28", date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{"jan 31 clamps to feb 29 on leap year", date(2028, time.January, 31), 1, date(2028, time.February, 29)},
		{"backward across year", date(2026, time.January, 15), -1, date(2025, time.December, 15)},
		{"mar 31 back clamps to feb", date(2026, time.March, 31), -1, date(2026, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.in, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestWeekNavigation(t *testing.T) {
	anchor := date(2026, time.August, 26)
	if got := NextWeek(anchor); !got.Equal(date(2026, time.September, 2)) {
		t.Errorf("NextWeek = %v", got)
	}
	if got := PreviousWeek(anchor); !got.Equal(date(2026, time.August, 19)) {
		t.Errorf("PreviousWeek = %v", got)
	}
}

func TestVerticalSpan(t *testing.T) {
	day := date(2026, time.January, 15)
	at := func(h, m int) time.Time {
		return time.Date(2026, time.January, 15, h, m, 0, 0, time.UTC)
	}

	t.Run("one hour at nine", func(t *testing.T) {
		span := VerticalSpan(at(9, 0), at(10, 0), day, 0)
		if !almostEqual(span.Offset, 0.375) {
			t.Errorf("offset = %v, want 0.375", span.Offset)
		}
		if !almostEqual(span.Height, 60.0/1440) {
			t.Errorf("height = %v, want %v", span.Height, 60.0/1440)
		}
	})

	t.Run("minimum floors short events", func(t *testing.T) {
		span := VerticalSpan(at(9, 0), at(9, 0), day, DefaultMinimumSpan)
		if !almostEqual(span.Height, 30.0/1440) {
			t.Errorf("height = %v, want %v", span.Height, 30.0/1440)
		}
	})

	t.Run("multi-day event clips to day bounds", func(t *testing.T) {
		start := time.Date(2026, time.January, 14, 22, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.January, 16, 3, 0, 0, 0, time.UTC)
		span := VerticalSpan(start, end, day, 0)
		if !almostEqual(span.Offset, 0) {
			t.Errorf("offset = %v, want 0", span.Offset)
		}
		// Clipped end is 23:59, so the height covers the whole day.
		if span.Height < 1438.0/1440 || span.Height > 1 {
			t.Errorf("height = %v, want nearly 1", span.Height)
		}
	})

	t.Run("event outside day yields zero span", func(t *testing.T) {
		start := time.Date(2026, time.January, 16, 9, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.January, 16, 10, 0, 0, 0, time.UTC)
		if span := VerticalSpan(start, end, day, 0); span != (Span{}) {
			t.Errorf("got %+v, want zero span", span)
		}
	})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComparisonHelpers(t *testing.T) {
	a := time.Date(2026, time.May, 3, 9, 30, 0, 0, time.UTC)
	b := time.Date(2026, time.May, 3, 23, 0, 0, 0, time.UTC)
	c := time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("SameDay(a, b) = false, want true")
	}
	if SameDay(b, c) {
		t.Error("SameDay(b, c) = true, want false")
	}
	if !SameMonth(a, c) {
		t.Error("SameMonth(a, c) = false, want true")
	}
	if SameMonth(a, a.AddDate(1, 0, 0)) {
		t.Error("SameMonth across years = true, want false")
	}
}

func TestParseDateTime(t *testing.T) {
	t.Run("with time", func(t *testing.T) {
		got, err := ParseDateTime("2026-01-15 09:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, time.January, 15, 9, 30, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("date only", func(t *testing.T) {
		got, err := ParseDateTime("2026-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if FormatTime(got) != "00:00" {
			t.Errorf("got %v, want midnight", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseDateTime("15/01/2026"); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
