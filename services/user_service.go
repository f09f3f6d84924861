package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habitTrackerAPI/internal/user"
	"habitTrackerAPI/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolationCode = "23505"

type UserService struct {
	db        *pgxpool.Pool
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(db *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{db: db, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

const userColumns = `id, username, email, password_hash, age_bracket, gender, time_commitment,
	preferred_time, existing_habits, improvement_areas, barriers,
	reminders_enabled, reminder_time, weekly_summary, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.AgeBracket,
		&u.Gender,
		&u.TimeCommitment,
		&u.PreferredTime,
		&u.ExistingHabits,
		&u.ImprovementAreas,
		&u.Barriers,
		&u.Settings.RemindersEnabled,
		&u.Settings.ReminderTime,
		&u.Settings.WeeklySummary,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	settings := user.DefaultNotificationSettings()

	query := `
	INSERT INTO users (id, username, email, password_hash, reminders_enabled, reminder_time, weekly_summary, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRow(
		ctx,
		query,
		uuid.New(),
		req.Username,
		req.Email,
		string(hash),
		settings.RemindersEnabled,
		settings.ReminderTime,
		settings.WeeklySummary,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// Authenticate checks the username/password pair and returns a signed
// bearer token plus the user record.
func (s *UserService) Authenticate(ctx context.Context, req *user.LoginRequest) (string, *user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(s.db.QueryRow(ctx, query, req.Username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, u, nil
}

func (s *UserService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error) {
	query := `
	UPDATE users
	SET
		email = COALESCE(NULLIF($2, ''), email),
		age_bracket = COALESCE(NULLIF($3, ''), age_bracket),
		gender = COALESCE(NULLIF($4, ''), gender),
		time_commitment = COALESCE(NULLIF($5, ''), time_commitment),
		preferred_time = COALESCE(NULLIF($6, ''), preferred_time),
		existing_habits = COALESCE($7, existing_habits),
		improvement_areas = COALESCE($8, improvement_areas),
		barriers = COALESCE($9, barriers),
		updated_at = NOW()
	WHERE id = $1
	RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRow(
		ctx,
		query,
		userID,
		req.Email,
		req.AgeBracket,
		req.Gender,
		req.TimeCommitment,
		req.PreferredTime,
		req.ExistingHabits,
		req.ImprovementAreas,
		req.Barriers,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

func (s *UserService) UpdateNotificationSettings(ctx context.Context, userID uuid.UUID, req *user.UpdateSettingsRequest) (*user.User, error) {
	if req.ReminderTime != nil && !utils.ValidClockTime(*req.ReminderTime) {
		return nil, ErrInvalidClockTime
	}

	current, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := current.Settings.Apply(req)

	query := `
	UPDATE users
	SET reminders_enabled = $2, reminder_time = $3, weekly_summary = $4, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRow(ctx, query, userID, settings.RemindersEnabled, settings.ReminderTime, settings.WeeklySummary))
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
