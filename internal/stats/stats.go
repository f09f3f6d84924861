package stats

import "time"

type UserStats struct {
	TodayStatus    bool               `json:"today_status"`
	TotalHabits    int                `json:"total_habits"`
	DaysThisWeek   int                `json:"days_this_week"`
	DaysThisMonth  int                `json:"days_this_month"`
	TotalDaysDone  int                `json:"total_days_done"`
	CompletionRate float64            `json:"completion_rate"`
	BestStreak     int                `json:"best_streak"`
	Habits         []HabitPerformance `json:"habits"`
}

type HabitPerformance struct {
	HabitID        int64   `json:"habit_id"`
	Name           string  `json:"name"`
	TrackedDays    int     `json:"tracked_days"`
	CompletionRate float64 `json:"completion_rate"`
	CurrentStreak  int     `json:"current_streak"`
	MaxStreak      int     `json:"max_streak"`
}

// CompletionRate returns the percentage of days in [start, end] with a
// completed entry, given the distinct completed days inside the window.
// The result is capped at 100 so over-logged windows cannot exceed it.
func CompletionRate(completedDays int, start, end time.Time) float64 {
	windowDays := WindowDays(start, end)
	if windowDays <= 0 || completedDays <= 0 {
		return 0
	}
	rate := float64(completedDays) / float64(windowDays) * 100
	if rate > 100 {
		return 100
	}
	return rate
}

// AggregateRate is the unweighted mean of per-habit completion rates.
func AggregateRate(rates []float64) float64 {
	if len(rates) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rates {
		sum += r
	}
	return sum / float64(len(rates))
}

// WindowDays counts the calendar days in the inclusive range [start, end].
func WindowDays(start, end time.Time) int {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
