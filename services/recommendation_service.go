package services

import (
	"context"
	"fmt"

	"habitTrackerAPI/internal/recommend"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecommendationService struct {
	db          *pgxpool.Pool
	recommender *recommend.Recommender
	habits      *HabitService
	users       *UserService
}

func NewRecommendationService(db *pgxpool.Pool, recommender *recommend.Recommender, habits *HabitService, users *UserService) *RecommendationService {
	return &RecommendationService{
		db:          db,
		recommender: recommender,
		habits:      habits,
		users:       users,
	}
}

// GetRecommendations ranks catalog habits against the user's stored
// profile attributes.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID, n int) (*recommend.Recommendations, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := recommend.Profile{
		AgeBracket:       u.AgeBracket,
		Gender:           u.Gender,
		TimeCommitment:   u.TimeCommitment,
		PreferredTime:    u.PreferredTime,
		ExistingHabits:   u.ExistingHabits,
		ImprovementAreas: u.ImprovementAreas,
		Barriers:         u.Barriers,
	}

	recs, err := s.recommender.Recommend(profile, n)
	if err != nil {
		return nil, fmt.Errorf("failed to build recommendations: %w", err)
	}
	return recs, nil
}

// GetOptimalTime analyzes a habit's logged completion times and
// suggests a better scheduled time when the logs support one. With
// too little data the habit's current time comes back unchanged.
func (s *RecommendationService) GetOptimalTime(ctx context.Context, userID uuid.UUID, habitID int64) (*recommend.TimingAnalysis, error) {
	h, err := s.habits.GetHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	times, err := s.habits.ActualTimes(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	analysis := recommend.AnalyzeTiming(times, h.SelectedTime)
	return &analysis, nil
}
