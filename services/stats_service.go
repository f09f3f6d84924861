package services

import (
	"context"
	"fmt"
	"time"

	"habitTrackerAPI/internal/stats"
	"habitTrackerAPI/internal/streak"
	"habitTrackerAPI/internal/types/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// statsWindowDays is the rolling window used for completion rates.
const statsWindowDays = 30

type StatsService struct {
	db *pgxpool.Pool
}

func NewStatsService(db *pgxpool.Pool) *StatsService {
	return &StatsService{db: db}
}

// GetStreak derives the current and maximum streak for one habit from
// its completed dates. Nothing is stored; the result is recomputed on
// every read.
func (s *StatsService) GetStreak(ctx context.Context, userID uuid.UUID, habitID int64) (streak.Result, error) {
	query := `
	SELECT DISTINCT date
	FROM habit_tracking
	WHERE user_id = $1 AND habit_id = $2 AND completed = true
	ORDER BY date ASC
	`

	rows, err := s.db.Query(ctx, query, userID, habitID)
	if err != nil {
		return streak.Result{}, fmt.Errorf("failed to query completed dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return streak.Result{}, fmt.Errorf("failed to scan date: %w", err)
		}
		dates = append(dates, d)
	}

	return streak.Calculate(dates, time.Now()), nil
}

// GetUserStats builds the dashboard numbers: per-habit completion
// rates over the rolling window, their unweighted mean, streaks and
// day counts. Everything is derived in one pass over the user's
// completed tracking rows.
func (s *StatsService) GetUserStats(ctx context.Context, userID uuid.UUID) (*stats.UserStats, error) {
	habitsQuery := `
	SELECT id, name
	FROM habits
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, habitsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habitNames := map[int64]string{}
	var habitOrder []int64
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habitNames[id] = name
		habitOrder = append(habitOrder, id)
	}
	rows.Close()

	trackingQuery := `
	SELECT habit_id, date
	FROM habit_tracking
	WHERE user_id = $1 AND completed = true
	ORDER BY date ASC
	`

	trackingRows, err := s.db.Query(ctx, trackingQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracking entries: %w", err)
	}
	defer trackingRows.Close()

	datesByHabit := map[int64][]time.Time{}
	allDays := map[string]bool{}
	for trackingRows.Next() {
		var habitID int64
		var date time.Time
		if err := trackingRows.Scan(&habitID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan tracking entry: %w", err)
		}
		datesByHabit[habitID] = append(datesByHabit[habitID], date)
		allDays[date.Format("2006-01-02")] = true
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, 0, -(statsWindowDays - 1))
	weekStart := startOfWeek(today)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	result := &stats.UserStats{
		TotalHabits:   len(habitOrder),
		TotalDaysDone: len(allDays),
	}

	weekDays := map[string]bool{}
	monthDays := map[string]bool{}
	var rates []float64
	for _, habitID := range habitOrder {
		dates := datesByHabit[habitID]

		inWindow := 0
		for _, d := range dates {
			day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			if !day.Before(windowStart) && !day.After(today) {
				inWindow++
			}
			if !day.Before(weekStart) && !day.After(today) {
				weekDays[day.Format("2006-01-02")] = true
			}
			if !day.Before(monthStart) && !day.After(today) {
				monthDays[day.Format("2006-01-02")] = true
			}
			if day.Equal(today) {
				result.TodayStatus = true
			}
		}

		rate := stats.CompletionRate(inWindow, windowStart, today)
		rates = append(rates, rate)

		streaks := streak.Calculate(dates, now)
		if streaks.MaxStreak > result.BestStreak {
			result.BestStreak = streaks.MaxStreak
		}

		result.Habits = append(result.Habits, stats.HabitPerformance{
			HabitID:        habitID,
			Name:           habitNames[habitID],
			TrackedDays:    len(dates),
			CompletionRate: rate,
			CurrentStreak:  streaks.CurrentStreak,
			MaxStreak:      streaks.MaxStreak,
		})
	}

	result.DaysThisWeek = len(weekDays)
	result.DaysThisMonth = len(monthDays)
	result.CompletionRate = stats.AggregateRate(rates)

	return result, nil
}

// GetCalendar returns one month of per-day completion counts.
func (s *StatsService) GetCalendar(ctx context.Context, userID uuid.UUID, year, month int) (*calendar.CalendarResponse, error) {
	var totalHabits int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM habits WHERE user_id = $1`, userID).Scan(&totalHabits); err != nil {
		return nil, fmt.Errorf("failed to count habits: %w", err)
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	query := `
	SELECT date, COUNT(*) FILTER (WHERE completed = true) as completed_count
	FROM habit_tracking
	WHERE user_id = $1
		AND date >= $2
		AND date <= $3
	GROUP BY date
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	defer rows.Close()

	dayMap := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		dayMap[date.Format("2006-01-02")] = count
	}

	var days []*calendar.CalendarDay
	today := time.Now().Format("2006-01-02")

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		count := dayMap[dateStr]
		day := &calendar.CalendarDay{
			Date:           d,
			CompletedCount: count,
			AllDone:        totalHabits > 0 && count >= totalHabits,
			IsToday:        dateStr == today,
		}
		days = append(days, day)
	}

	return &calendar.CalendarResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
