package calendar

import (
	"testing"
	"time"
)

func TestResolveNthWeekday(t *testing.T) {
	tests := []struct {
		name    string
		month   time.Month
		weekday time.Weekday
		ordinal int
		wantDay int
		wantOK  bool
	}{
		{"first monday of march", time.March, time.Monday, 1, 2, true},
		{"third monday of march", time.March, time.Monday, 3, 16, true},
		{"fifth monday of march exists", time.March, time.Monday, 5, 30, true},
		{"fifth friday of march missing", time.March, time.Friday, 5, 0, false},
		{"last friday of february", time.February, time.Friday, LastWeek, 27, true},
		{"last monday of march", time.March, time.Monday, LastWeek, 30, true},
		{"first thursday of january is the 1st", time.January, time.Thursday, 1, 1, true},
		{"ordinal zero rejected", time.March, time.Monday, 0, 0, false},
		{"ordinal six rejected", time.March, time.Monday, 6, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveNthWeekday(2026, tt.month, tt.weekday, tt.ordinal)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			want := Date(2026, tt.month, tt.wantDay)
			if !got.Equal(want) {
				t.Errorf("expected %s, got %s", want.Format(time.DateOnly), got.Format(time.DateOnly))
			}
			if got.Weekday() != tt.weekday {
				t.Errorf("expected weekday %s, got %s", tt.weekday, got.Weekday())
			}
		})
	}
}

func TestResolveWeeklyOccurrences(t *testing.T) {
	anchor := Date(2026, time.January, 2) // a Friday

	t.Run("every week", func(t *testing.T) {
		got := ResolveWeeklyOccurrences(2026, time.March, time.Friday, 1, anchor)
		assertDays(t, got, 6, 13, 20, 27)
	})

	t.Run("every other week", func(t *testing.T) {
		got := ResolveWeeklyOccurrences(2026, time.March, time.Friday, 2, anchor)
		assertDays(t, got, 13, 27)
	})

	t.Run("interval below one treated as weekly", func(t *testing.T) {
		got := ResolveWeeklyOccurrences(2026, time.March, time.Friday, 0, anchor)
		assertDays(t, got, 6, 13, 20, 27)
	})

	t.Run("every other week in anchor month", func(t *testing.T) {
		got := ResolveWeeklyOccurrences(2026, time.January, time.Friday, 2, anchor)
		assertDays(t, got, 2, 16, 30)
	})
}

func assertDays(t *testing.T, got []time.Time, days ...int) {
	t.Helper()
	if len(got) != len(days) {
		t.Fatalf("expected %d dates, got %d: %v", len(days), len(got), got)
	}
	for i, d := range days {
		if got[i].Day() != d {
			t.Errorf("date %d: expected day %d, got %d", i, d, got[i].Day())
		}
	}
}
