package streak

import (
	"sort"
	"time"
)

// Result holds the derived streak numbers for one habit. It is never
// stored; services recompute it from the completion dates on read.
type Result struct {
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`
}

// Calculate derives the current and maximum consecutive-day streaks
// from the dates a habit was marked completed. Duplicate dates are
// collapsed and the input does not need to be sorted. The current
// streak only counts when the most recent completion is today or
// yesterday relative to the given reference day.
func Calculate(dates []time.Time, today time.Time) Result {
	if len(dates) == 0 {
		return Result{}
	}

	days := normalize(dates)
	today = truncateDay(today)

	current := 0
	last := days[len(days)-1]
	if daysBetween(last, today) <= 1 {
		current = 1
		for i := len(days) - 1; i > 0; i-- {
			if daysBetween(days[i-1], days[i]) == 1 {
				current++
			} else {
				break
			}
		}
	}

	max := 0
	run := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			if run > max {
				max = run
			}
			run = 1
		}
	}
	if run > max {
		max = run
	}

	return Result{CurrentStreak: current, MaxStreak: max}
}

// normalize truncates to midnight UTC, sorts ascending and drops
// duplicate days.
func normalize(dates []time.Time) []time.Time {
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		days = append(days, truncateDay(d))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	deduped := days[:1]
	for _, d := range days[1:] {
		if !d.Equal(deduped[len(deduped)-1]) {
			deduped = append(deduped, d)
		}
	}
	return deduped
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
