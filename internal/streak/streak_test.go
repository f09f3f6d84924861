package streak

import (
	"testing"
	"time"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func TestCalculateEmpty(t *testing.T) {
	got := Calculate(nil, today)
	if got.CurrentStreak != 0 || got.MaxStreak != 0 {
		t.Errorf("expected zero result, got %+v", got)
	}
}

func TestCalculateSingleDateToday(t *testing.T) {
	got := Calculate([]time.Time{today}, today)
	if got.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", got.CurrentStreak)
	}
	if got.MaxStreak != 1 {
		t.Errorf("max streak = %d, want 1", got.MaxStreak)
	}
}

func TestCalculateSingleDateYesterday(t *testing.T) {
	got := Calculate([]time.Time{day(-1)}, today)
	if got.CurrentStreak != 1 || got.MaxStreak != 1 {
		t.Errorf("got %+v, want {1 1}", got)
	}
}

func TestCalculateSingleStaleDate(t *testing.T) {
	got := Calculate([]time.Time{day(-5)}, today)
	if got.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0 for a 5-day-old completion", got.CurrentStreak)
	}
	if got.MaxStreak != 1 {
		t.Errorf("max streak = %d, want 1", got.MaxStreak)
	}
}

func TestCalculateGaplessRunEqualsCount(t *testing.T) {
	var dates []time.Time
	for i := -6; i <= 0; i++ {
		dates = append(dates, day(i))
	}

	got := Calculate(dates, today)
	if got.MaxStreak != len(dates) {
		t.Errorf("max streak = %d, want %d for gapless dates", got.MaxStreak, len(dates))
	}
	if got.CurrentStreak != len(dates) {
		t.Errorf("current streak = %d, want %d", got.CurrentStreak, len(dates))
	}
}

func TestCalculateTwoDayGapBreaksStreak(t *testing.T) {
	// {D, D+1, D+3, D+4}: one 2-day gap, max streak is 2.
	d := day(-10)
	dates := []time.Time{d, d.AddDate(0, 0, 1), d.AddDate(0, 0, 3), d.AddDate(0, 0, 4)}

	got := Calculate(dates, today)
	if got.MaxStreak != 2 {
		t.Errorf("max streak = %d, want 2", got.MaxStreak)
	}
	if got.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0 for stale dates", got.CurrentStreak)
	}
}

func TestCalculateCurrentStreakExtendsBackward(t *testing.T) {
	dates := []time.Time{day(-6), day(-5), day(-2), day(-1), today}

	got := Calculate(dates, today)
	if got.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", got.CurrentStreak)
	}
	if got.MaxStreak != 3 {
		t.Errorf("max streak = %d, want 3", got.MaxStreak)
	}
}

func TestCalculateUnsortedAndDuplicateDates(t *testing.T) {
	dates := []time.Time{today, day(-2), day(-1), day(-1), today}

	got := Calculate(dates, today)
	if got.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", got.CurrentStreak)
	}
	if got.MaxStreak != 3 {
		t.Errorf("max streak = %d, want 3", got.MaxStreak)
	}
}

func TestCalculateEndedStreakLongerThanCurrent(t *testing.T) {
	dates := []time.Time{day(-10), day(-9), day(-8), day(-7), today}

	got := Calculate(dates, today)
	if got.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", got.CurrentStreak)
	}
	if got.MaxStreak != 4 {
		t.Errorf("max streak = %d, want 4", got.MaxStreak)
	}
}
