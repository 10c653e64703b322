package service

import (
	"context"
	"errors"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/workoutlog"
)

const maxDurationSec = 24 * 60 * 60

var ErrInvalidDuration = errors.New("duration must be between 0 and 86400 seconds")

// StatsResult counts a period's workouts per category.
type StatsResult struct {
	Period  domain.Period       `json:"period"`
	Stats   domain.WorkoutStats `json:"stats"`
	Days    []domain.DayGroup   `json:"days"`
	Offline bool                `json:"offline"`
}

type WorkoutService interface {
	// Record logs a completed exercise. It returns once the entry is stored
	// locally; the remote sync finishes in the background.
	Record(ctx context.Context, userID, exerciseID string, durationSec int) (domain.WorkoutLog, error)
	History(ctx context.Context, userID string, period domain.Period) (workoutlog.LoadResult, error)
	Stats(ctx context.Context, userID string, period domain.Period) (StatsResult, error)
	Migrate(ctx context.Context, fromDeviceID, toUserID string) (int64, error)
	ClearAll(ctx context.Context, userID string) error
	Subscribe(userID string) (<-chan workoutlog.Change, func())
}

type workoutService struct {
	store     *workoutlog.Store
	exercises ExerciseService
}

func NewWorkoutService(store *workoutlog.Store, exercises ExerciseService) WorkoutService {
	return &workoutService{
		store:     store,
		exercises: exercises,
	}
}

func (s *workoutService) Record(ctx context.Context, userID, exerciseID string, durationSec int) (domain.WorkoutLog, error) {
	if durationSec < 0 || durationSec > maxDurationSec {
		return domain.WorkoutLog{}, ErrInvalidDuration
	}
	ex, err := s.exercises.GetExercise(exerciseID)
	if err != nil {
		return domain.WorkoutLog{}, err
	}
	return s.store.Record(ctx, userID, ex, durationSec)
}

func (s *workoutService) History(ctx context.Context, userID string, period domain.Period) (workoutlog.LoadResult, error) {
	return s.store.LoadPeriod(ctx, userID, period)
}

func (s *workoutService) Stats(ctx context.Context, userID string, period domain.Period) (StatsResult, error) {
	res, err := s.store.LoadPeriod(ctx, userID, period)
	if err != nil {
		return StatsResult{}, err
	}
	return StatsResult{
		Period:  period,
		Stats:   domain.SummarizeGroups(res.Days),
		Days:    res.Days,
		Offline: res.Offline,
	}, nil
}

func (s *workoutService) Migrate(ctx context.Context, fromDeviceID, toUserID string) (int64, error) {
	return s.store.Migrate(ctx, fromDeviceID, toUserID)
}

func (s *workoutService) ClearAll(ctx context.Context, userID string) error {
	return s.store.ClearAll(ctx, userID)
}

func (s *workoutService) Subscribe(userID string) (<-chan workoutlog.Change, func()) {
	return s.store.Subscribe(userID)
}
