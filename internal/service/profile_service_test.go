package service_test

import (
	"context"
	"testing"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *domain.UserProfile {
	return &domain.UserProfile{
		FirstName:          "Sam",
		LastName:           "Lee",
		Age:                30,
		Gender:             domain.GenderMale,
		Goal:               domain.GoalMuscleGain,
		HeightCm:           180,
		WeightKg:           80,
		Location:           domain.LocationGym,
		AvailableEquipment: []string{"Lat Pulldown"},
	}
}

func TestProfileService_SaveProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := service.NewProfileService(repo)
	ctx := context.Background()

	saved, err := svc.SaveProfile(ctx, "user-1", validProfile())
	require.NoError(t, err)
	assert.Equal(t, "user-1", saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	created := saved.CreatedAt

	time.Sleep(2 * time.Millisecond)
	update := validProfile()
	update.WeightKg = 82
	update.CreatedAt = time.Time{}
	saved, err = svc.SaveProfile(ctx, "user-1", update)
	require.NoError(t, err)
	assert.Equal(t, created, saved.CreatedAt)
	assert.True(t, saved.UpdatedAt.After(created))

	got, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 82.0, got.WeightKg)
}

func TestProfileService_SaveProfile_HomeDropsEquipment(t *testing.T) {
	svc := service.NewProfileService(newFakeProfileRepo())

	p := validProfile()
	p.Location = domain.LocationHome
	saved, err := svc.SaveProfile(context.Background(), "user-1", p)
	require.NoError(t, err)
	assert.Empty(t, saved.AvailableEquipment)
}

func TestProfileService_SaveProfile_Invalid(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := service.NewProfileService(repo)

	p := validProfile()
	p.HeightCm = 90
	p.FirstName = ""
	_, err := svc.SaveProfile(context.Background(), "user-1", p)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "height")
	assert.Contains(t, verr.Fields, "firstName")
	assert.Empty(t, repo.profiles)
}

func TestProfileService_BMIAndNutrition(t *testing.T) {
	svc := service.NewProfileService(newFakeProfileRepo())
	ctx := context.Background()

	_, err := svc.BMI(ctx, "user-1")
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
	_, err = svc.Nutrition(ctx, "user-1")
	assert.ErrorIs(t, err, service.ErrProfileNotFound)

	_, err = svc.SaveProfile(ctx, "user-1", validProfile())
	require.NoError(t, err)

	bmi, err := svc.BMI(ctx, "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 24.69, bmi.Score, 0.01)
	assert.Equal(t, domain.BMINormal, bmi.Category)

	targets, err := svc.Nutrition(ctx, "user-1")
	require.NoError(t, err)
	// BMR 10*80 + 6.25*180 - 5*30 + 5 = 1780; x1.55 = 2759; +300 = 3059
	assert.Equal(t, 3059, targets.Calories)
	assert.Equal(t, 128, targets.Protein)
}

func TestProfileService_GetProfile_RepoError(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.getErr = errBoom
	svc := service.NewProfileService(repo)

	_, err := svc.GetProfile(context.Background(), "user-1")
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, service.ErrProfileNotFound)
}

func TestProfileService_Adopt(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := service.NewProfileService(repo)
	ctx := context.Background()

	// nothing to adopt
	require.NoError(t, svc.Adopt(ctx, "device_1", "user-1"))
	assert.Empty(t, repo.profiles)

	_, err := svc.SaveProfile(ctx, "device_1", validProfile())
	require.NoError(t, err)
	require.NoError(t, svc.Adopt(ctx, "device_1", "user-1"))
	adopted, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", adopted.ID)

	// an existing account profile wins
	other := validProfile()
	other.FirstName = "Alex"
	_, err = svc.SaveProfile(ctx, "device_2", other)
	require.NoError(t, err)
	require.NoError(t, svc.Adopt(ctx, "device_2", "user-1"))
	kept, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Sam", kept.FirstName)
}
