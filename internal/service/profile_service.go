package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"

	log "github.com/sirupsen/logrus"
)

var ErrProfileNotFound = errors.New("profile not found, complete onboarding first")

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	// SaveProfile validates and upserts the profile; a *domain.ValidationError
	// is returned untouched for field-level reporting.
	SaveProfile(ctx context.Context, userID string, profile *domain.UserProfile) (*domain.UserProfile, error)
	BMI(ctx context.Context, userID string) (domain.BMIInfo, error)
	Nutrition(ctx context.Context, userID string) (domain.NutritionTargets, error)
	// Adopt copies the device profile to the account unless the account
	// already has one.
	Adopt(ctx context.Context, fromDeviceID, toUserID string) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, profile *domain.UserProfile) (*domain.UserProfile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile.ID = userID
	profile.UpdatedAt = now
	profile.CreatedAt = now
	if profile.Location == domain.LocationHome {
		profile.AvailableEquipment = nil
	}

	existing, err := s.profileRepo.GetByID(ctx, userID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile %s: %w", userID, err)
	}
	return profile, nil
}

func (s *profileService) BMI(ctx context.Context, userID string) (domain.BMIInfo, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.BMIInfo{}, err
	}
	return domain.AnalyzeBMI(profile), nil
}

func (s *profileService) Nutrition(ctx context.Context, userID string) (domain.NutritionTargets, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.NutritionTargets{}, err
	}
	return domain.DailyTargets(profile), nil
}

func (s *profileService) Adopt(ctx context.Context, fromDeviceID, toUserID string) error {
	_, err := s.profileRepo.GetByID(ctx, toUserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	deviceProfile, err := s.profileRepo.GetByID(ctx, fromDeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	deviceProfile.ID = toUserID
	deviceProfile.UpdatedAt = s.now().UTC()
	if err := s.profileRepo.Upsert(ctx, deviceProfile); err != nil {
		return err
	}
	log.Debugf("profile of %s adopted by %s", fromDeviceID, toUserID)
	return nil
}
