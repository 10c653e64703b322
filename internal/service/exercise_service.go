package service

import (
	"context"
	"errors"

	"fitguide/fitness-app/internal/catalog"
	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/resolver"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseService interface {
	Equipment() []domain.Equipment
	// ListExercises resolves the catalog against the user's profile.
	ListExercises(ctx context.Context, userID string, q resolver.Query) (resolver.Page, error)
	GetExercise(id string) (*domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	catalog        *catalog.Catalog
	profileService ProfileService
	pageSize       int
}

func NewExerciseService(cat *catalog.Catalog, profileService ProfileService, pageSize int) ExerciseService {
	if pageSize <= 0 {
		pageSize = resolver.DefaultPageSize
	}
	return &exerciseService{
		catalog:        cat,
		profileService: profileService,
		pageSize:       pageSize,
	}
}

func (s *exerciseService) Equipment() []domain.Equipment {
	return catalog.Equipment()
}

func (s *exerciseService) ListExercises(ctx context.Context, userID string, q resolver.Query) (resolver.Page, error) {
	profile, err := s.profileService.GetProfile(ctx, userID)
	if err != nil {
		return resolver.Page{}, err
	}
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	return resolver.Resolve(s.catalog.Exercises(), profile, q), nil
}

func (s *exerciseService) GetExercise(id string) (*domain.Exercise, error) {
	ex, ok := s.catalog.Get(id)
	if !ok {
		return nil, ErrExerciseNotFound
	}
	return ex, nil
}
