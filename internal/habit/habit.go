package habit

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID           int64     `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Category     string    `json:"category" db:"category"`
	Description  string    `json:"description" db:"description"`
	TimeRequired string    `json:"time_required" db:"time_required"`
	Difficulty   string    `json:"difficulty" db:"difficulty"`
	SelectedTime string    `json:"selected_time" db:"selected_time"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TrackingEntry is one day's completion log for a habit. At most one
// entry exists per (habit, date); writes upsert on that key.
type TrackingEntry struct {
	ID         int64     `json:"id" db:"id"`
	HabitID    int64     `json:"habit_id" db:"habit_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Date       time.Time `json:"date" db:"date"`
	Completed  bool      `json:"completed" db:"completed"`
	ActualTime *string   `json:"actual_time" db:"actual_time"`
	LoggedAt   time.Time `json:"logged_at" db:"logged_at"`
}

type CreateHabitRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description"`
	TimeRequired string `json:"time_required"`
	Difficulty   string `json:"difficulty"`
	SelectedTime string `json:"selected_time"`
}

// UpdateHabitRequest carries partial edits; empty fields keep the
// stored value.
type UpdateHabitRequest struct {
	Name         string `json:"name" validate:"omitempty,max=100"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	TimeRequired string `json:"time_required"`
	Difficulty   string `json:"difficulty"`
	SelectedTime string `json:"selected_time"`
}

type TrackHabitRequest struct {
	Date       string  `json:"date"` // YYYY-MM-DD, defaults to today
	Completed  bool    `json:"completed"`
	ActualTime *string `json:"actual_time"`
}
