package stats

import (
	"testing"
	"time"
)

func TestWindowDays(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if got := WindowDays(start, start); got != 1 {
		t.Errorf("single-day window = %d, want 1", got)
	}
	if got := WindowDays(start, start.AddDate(0, 0, 29)); got != 30 {
		t.Errorf("30-day window = %d, want 30", got)
	}
	if got := WindowDays(start, start.AddDate(0, 0, -1)); got != 0 {
		t.Errorf("inverted window = %d, want 0", got)
	}
}

func TestCompletionRate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 9) // 10-day window

	if got := CompletionRate(0, start, end); got != 0 {
		t.Errorf("zero days rate = %f, want 0", got)
	}
	if got := CompletionRate(5, start, end); got != 50 {
		t.Errorf("5/10 rate = %f, want 50", got)
	}
	if got := CompletionRate(10, start, end); got != 100 {
		t.Errorf("10/10 rate = %f, want 100", got)
	}
	// More logged days than the window has is capped, never above 100.
	if got := CompletionRate(15, start, end); got != 100 {
		t.Errorf("overfull rate = %f, want 100", got)
	}
}

func TestCompletionRateMonotone(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 29)

	prev := 0.0
	for days := 0; days <= 35; days++ {
		rate := CompletionRate(days, start, end)
		if rate < prev {
			t.Fatalf("rate decreased from %f to %f at %d days", prev, rate, days)
		}
		if rate > 100 {
			t.Fatalf("rate %f exceeds 100 at %d days", rate, days)
		}
		prev = rate
	}
}

func TestAggregateRate(t *testing.T) {
	if got := AggregateRate(nil); got != 0 {
		t.Errorf("empty aggregate = %f, want 0", got)
	}
	if got := AggregateRate([]float64{100, 50, 0}); got != 50 {
		t.Errorf("aggregate = %f, want 50", got)
	}
}
