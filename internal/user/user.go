package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID            `json:"id" db:"id"`
	Username         string               `json:"username" db:"username"`
	Email            string               `json:"email" db:"email"`
	PasswordHash     string               `json:"-" db:"password_hash"`
	AgeBracket       string               `json:"age_bracket" db:"age_bracket"`
	Gender           string               `json:"gender" db:"gender"`
	TimeCommitment   string               `json:"time_commitment" db:"time_commitment"`
	PreferredTime    string               `json:"preferred_time" db:"preferred_time"`
	ExistingHabits   []string             `json:"existing_habits" db:"existing_habits"`
	ImprovementAreas []string             `json:"improvement_areas" db:"improvement_areas"`
	Barriers         []string             `json:"barriers" db:"barriers"`
	Settings         NotificationSettings `json:"notification_settings"`
	CreatedAt        time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at" db:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest carries partial profile edits. Empty fields keep
// the stored value (COALESCE in the update statement).
type UpdateProfileRequest struct {
	Email            string   `json:"email" validate:"omitempty,email"`
	AgeBracket       string   `json:"age_bracket"`
	Gender           string   `json:"gender"`
	TimeCommitment   string   `json:"time_commitment"`
	PreferredTime    string   `json:"preferred_time"`
	ExistingHabits   []string `json:"existing_habits"`
	ImprovementAreas []string `json:"improvement_areas"`
	Barriers         []string `json:"barriers"`
}
