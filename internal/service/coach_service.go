package service

import (
	"context"

	"fitguide/fitness-app/internal/ai"
)

// CoachService serves generated coaching content for a user's profile.
// Generation problems never surface as errors; static content is returned instead.
type CoachService interface {
	Insight(ctx context.Context, userID string) (ai.Result, error)
	Routine(ctx context.Context, userID string) (ai.Result, error)
	MealPlan(ctx context.Context, userID string) (ai.Result, error)
	Chat(ctx context.Context, history []ai.Turn) (ai.Result, error)
}

type coachService struct {
	coach          *ai.Coach
	profileService ProfileService
}

func NewCoachService(coach *ai.Coach, profileService ProfileService) CoachService {
	return &coachService{
		coach:          coach,
		profileService: profileService,
	}
}

func (s *coachService) Insight(ctx context.Context, userID string) (ai.Result, error) {
	profile, err := s.profileService.GetProfile(ctx, userID)
	if err != nil {
		return ai.Result{}, err
	}
	return s.coach.Insight(ctx, profile), nil
}

func (s *coachService) Routine(ctx context.Context, userID string) (ai.Result, error) {
	profile, err := s.profileService.GetProfile(ctx, userID)
	if err != nil {
		return ai.Result{}, err
	}
	return s.coach.Routine(ctx, profile), nil
}

func (s *coachService) MealPlan(ctx context.Context, userID string) (ai.Result, error) {
	profile, err := s.profileService.GetProfile(ctx, userID)
	if err != nil {
		return ai.Result{}, err
	}
	return s.coach.MealPlan(ctx, profile), nil
}

func (s *coachService) Chat(ctx context.Context, history []ai.Turn) (ai.Result, error) {
	return s.coach.Chat(ctx, history)
}
