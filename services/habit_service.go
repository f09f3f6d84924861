package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habitTrackerAPI/internal/habit"
	"habitTrackerAPI/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HabitService struct {
	db *pgxpool.Pool
}

func NewHabitService(db *pgxpool.Pool) *HabitService {
	return &HabitService{db: db}
}

func (s *HabitService) CreateHabit(ctx context.Context, userID uuid.UUID, req *habit.CreateHabitRequest) (*habit.Habit, error) {
	selectedTime := req.SelectedTime
	if selectedTime == "" {
		selectedTime = "09:00"
	}
	if !utils.ValidClockTime(selectedTime) {
		return nil, ErrInvalidClockTime
	}

	query := `
	INSERT INTO habits (user_id, name, category, description, time_required, difficulty, selected_time, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	RETURNING id, user_id, name, category, description, time_required, difficulty, selected_time, created_at
	`

	h := &habit.Habit{}
	err := s.db.QueryRow(
		ctx,
		query,
		userID,
		req.Name,
		req.Category,
		req.Description,
		req.TimeRequired,
		req.Difficulty,
		selectedTime,
	).Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Category,
		&h.Description,
		&h.TimeRequired,
		&h.Difficulty,
		&h.SelectedTime,
		&h.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return h, nil
}

func (s *HabitService) ListHabits(ctx context.Context, userID uuid.UUID) ([]*habit.Habit, error) {
	query := `
	SELECT id, user_id, name, category, description, time_required, difficulty, selected_time, created_at
	FROM habits
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*habit.Habit
	for rows.Next() {
		h := &habit.Habit{}
		err := rows.Scan(
			&h.ID,
			&h.UserID,
			&h.Name,
			&h.Category,
			&h.Description,
			&h.TimeRequired,
			&h.Difficulty,
			&h.SelectedTime,
			&h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}

	return habits, nil
}

func (s *HabitService) GetHabit(ctx context.Context, userID uuid.UUID, habitID int64) (*habit.Habit, error) {
	query := `
	SELECT id, user_id, name, category, description, time_required, difficulty, selected_time, created_at
	FROM habits
	WHERE id = $1 AND user_id = $2
	`

	h := &habit.Habit{}
	err := s.db.QueryRow(ctx, query, habitID, userID).Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Category,
		&h.Description,
		&h.TimeRequired,
		&h.Difficulty,
		&h.SelectedTime,
		&h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return h, nil
}

func (s *HabitService) UpdateHabit(ctx context.Context, userID uuid.UUID, habitID int64, req *habit.UpdateHabitRequest) (*habit.Habit, error) {
	if req.SelectedTime != "" && !utils.ValidClockTime(req.SelectedTime) {
		return nil, ErrInvalidClockTime
	}

	query := `
	UPDATE habits
	SET
		name = COALESCE(NULLIF($3, ''), name),
		category = COALESCE(NULLIF($4, ''), category),
		description = COALESCE(NULLIF($5, ''), description),
		time_required = COALESCE(NULLIF($6, ''), time_required),
		difficulty = COALESCE(NULLIF($7, ''), difficulty),
		selected_time = COALESCE(NULLIF($8, ''), selected_time)
	WHERE id = $1 AND user_id = $2
	RETURNING id, user_id, name, category, description, time_required, difficulty, selected_time, created_at
	`

	h := &habit.Habit{}
	err := s.db.QueryRow(
		ctx,
		query,
		habitID,
		userID,
		req.Name,
		req.Category,
		req.Description,
		req.TimeRequired,
		req.Difficulty,
		req.SelectedTime,
	).Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Category,
		&h.Description,
		&h.TimeRequired,
		&h.Difficulty,
		&h.SelectedTime,
		&h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return h, nil
}

// DeleteHabit removes a habit together with its tracking entries in
// one transaction so no orphan logs survive the deletion.
func (s *HabitService) DeleteHabit(ctx context.Context, userID uuid.UUID, habitID int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM habit_tracking WHERE habit_id = $1 AND user_id = $2`, habitID, userID); err != nil {
		return fmt.Errorf("failed to delete tracking entries: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM habits WHERE id = $1 AND user_id = $2`, habitID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit habit deletion: %w", err)
	}
	return nil
}

// TrackHabit upserts the completion log entry for one day. Writing the
// same (habit, date) twice overwrites the earlier entry.
func (s *HabitService) TrackHabit(ctx context.Context, userID uuid.UUID, habitID int64, req *habit.TrackHabitRequest) (*habit.TrackingEntry, error) {
	if req.ActualTime != nil && !utils.ValidClockTime(*req.ActualTime) {
		return nil, ErrInvalidClockTime
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
		}
		date = parsed
	}

	// Ownership check doubles as the not-found path.
	if _, err := s.GetHabit(ctx, userID, habitID); err != nil {
		return nil, err
	}

	query := `
	INSERT INTO habit_tracking (habit_id, user_id, date, completed, actual_time, logged_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (habit_id, date)
	DO UPDATE SET
		completed = $4,
		actual_time = $5,
		logged_at = NOW()
	RETURNING id, habit_id, user_id, date, completed, actual_time, logged_at
	`

	entry := &habit.TrackingEntry{}
	err := s.db.QueryRow(ctx, query, habitID, userID, date, req.Completed, req.ActualTime).Scan(
		&entry.ID,
		&entry.HabitID,
		&entry.UserID,
		&entry.Date,
		&entry.Completed,
		&entry.ActualTime,
		&entry.LoggedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to track habit: %w", err)
	}

	return entry, nil
}

// GetTrackingEntries returns a habit's log, optionally narrowed to a
// single date or an inclusive date range.
func (s *HabitService) GetTrackingEntries(ctx context.Context, userID uuid.UUID, habitID int64, date, start, end *time.Time) ([]*habit.TrackingEntry, error) {
	query := `
	SELECT id, habit_id, user_id, date, completed, actual_time, logged_at
	FROM habit_tracking
	WHERE user_id = $1 AND habit_id = $2
	`
	params := []any{userID, habitID}

	if date != nil {
		params = append(params, *date)
		query += fmt.Sprintf(" AND date = $%d", len(params))
	}
	if start != nil && end != nil {
		params = append(params, *start, *end)
		query += fmt.Sprintf(" AND date BETWEEN $%d AND $%d", len(params)-1, len(params))
	}
	query += " ORDER BY date ASC"

	rows, err := s.db.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracking entries: %w", err)
	}
	defer rows.Close()

	var entries []*habit.TrackingEntry
	for rows.Next() {
		entry := &habit.TrackingEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.HabitID,
			&entry.UserID,
			&entry.Date,
			&entry.Completed,
			&entry.ActualTime,
			&entry.LoggedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tracking entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ActualTimes returns the logged HH:MM completion times for a habit,
// completed entries only.
func (s *HabitService) ActualTimes(ctx context.Context, userID uuid.UUID, habitID int64) ([]string, error) {
	query := `
	SELECT actual_time
	FROM habit_tracking
	WHERE user_id = $1 AND habit_id = $2 AND completed = true AND actual_time IS NOT NULL
	ORDER BY date ASC
	`

	rows, err := s.db.Query(ctx, query, userID, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query actual times: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan actual time: %w", err)
		}
		times = append(times, t)
	}

	return times, nil
}
