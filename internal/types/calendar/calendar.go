package calendar

import "time"

type CalendarDay struct {
	Date           time.Time `json:"date" db:"date"`
	CompletedCount int       `json:"completed_count" db:"completed_count"`
	AllDone        bool      `json:"all_done"`
	IsToday        bool      `json:"is_today"`
}

type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Days  []*CalendarDay `json:"days"`
}
