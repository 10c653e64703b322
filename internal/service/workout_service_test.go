package service_test

import (
	"context"
	"testing"

	"fitguide/fitness-app/internal/catalog"
	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/localcache"
	"fitguide/fitness-app/internal/metrics"
	"fitguide/fitness-app/internal/resolver"
	"fitguide/fitness-app/internal/service"
	"fitguide/fitness-app/internal/workoutlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestExerciseService_ListExercises(t *testing.T) {
	profiles := newFakeProfileRepo()
	profileSvc := service.NewProfileService(profiles)
	svc := service.NewExerciseService(catalog.Default(), profileSvc, 4)
	ctx := context.Background()

	_, err := svc.ListExercises(ctx, "user-1", resolver.Query{})
	assert.ErrorIs(t, err, service.ErrProfileNotFound)

	home := validProfile()
	home.Location = domain.LocationHome
	_, err = profileSvc.SaveProfile(ctx, "user-1", home)
	require.NoError(t, err)

	page, err := svc.ListExercises(ctx, "user-1", resolver.Query{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, page.PageSize)
	assert.LessOrEqual(t, len(page.Items), 4)
	assert.Positive(t, page.Total)
	for _, ex := range page.Items {
		assert.Empty(t, ex.EquipmentRequired, ex.ID)
		assert.True(t, ex.AvailableAt(domain.LocationHome), ex.ID)
	}

	page, err = svc.ListExercises(ctx, "user-1", resolver.Query{Page: 1, PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PageSize)
	assert.Len(t, page.Items, page.Total)
}

func TestExerciseService_GetExercise(t *testing.T) {
	svc := service.NewExerciseService(catalog.Default(), nil, 0)

	ex, err := svc.GetExercise("back_1")
	require.NoError(t, err)
	assert.Equal(t, "back_1", ex.ID)

	_, err = svc.GetExercise("nope")
	assert.ErrorIs(t, err, service.ErrExerciseNotFound)

	assert.NotEmpty(t, svc.Equipment())
}

func newWorkoutFixture(t *testing.T) (service.WorkoutService, *workoutlog.Store, *fakeWorkoutRepo) {
	t.Helper()
	remote := newFakeWorkoutRepo()
	store := workoutlog.NewStore(remote, localcache.NewMemoryCache(), metrics.NewTestManager(), workoutlog.Config{})
	t.Cleanup(store.Wait)
	exercises := service.NewExerciseService(catalog.Default(), nil, 0)
	return service.NewWorkoutService(store, exercises), store, remote
}

func TestWorkoutService_Record(t *testing.T) {
	svc, store, remote := newWorkoutFixture(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, "user-1", "nope", 60)
	assert.ErrorIs(t, err, service.ErrExerciseNotFound)
	_, err = svc.Record(ctx, "user-1", "back_1", -1)
	assert.ErrorIs(t, err, service.ErrInvalidDuration)

	entry, err := svc.Record(ctx, "user-1", "back_1", 90)
	require.NoError(t, err)
	assert.True(t, domain.IsTempID(entry.ID))
	assert.Equal(t, "back_1", entry.ExerciseID)
	assert.Equal(t, 90, entry.Duration)

	store.Wait()
	assert.Len(t, remote.logs, 1)

	res, err := svc.History(ctx, "user-1", domain.PeriodAll)
	require.NoError(t, err)
	require.Len(t, res.Logs, 1)
	assert.False(t, domain.IsTempID(res.Logs[0].ID))
}

func TestWorkoutService_StatsAndClear(t *testing.T) {
	svc, store, _ := newWorkoutFixture(t)
	ctx := context.Background()

	for _, id := range []string{"back_1", "cardio_1", "core_1", "chest_1"} {
		_, err := svc.Record(ctx, "user-1", id, 30)
		require.NoError(t, err)
	}
	store.Wait()

	stats, err := svc.Stats(ctx, "user-1", domain.PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodToday, stats.Period)
	assert.Equal(t, 4, stats.Stats.TotalWorkouts)
	assert.Equal(t, 2, stats.Stats.StrengthCount)
	assert.Equal(t, 1, stats.Stats.CardioCount)
	assert.Equal(t, 1, stats.Stats.CoreCount)
	assert.False(t, stats.Offline)

	require.NoError(t, svc.ClearAll(ctx, "user-1"))
	stats, err = svc.Stats(ctx, "user-1", domain.PeriodAll)
	require.NoError(t, err)
	assert.Zero(t, stats.Stats.TotalWorkouts)
}

func TestWorkoutService_Migrate(t *testing.T) {
	svc, store, _ := newWorkoutFixture(t)
	ctx := context.Background()

	deviceID := domain.NewDeviceID()
	_, err := svc.Record(ctx, deviceID, "leg_1", 45)
	require.NoError(t, err)
	store.Wait()

	moved, err := svc.Migrate(ctx, deviceID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), moved)

	res, err := svc.History(ctx, "user-1", domain.PeriodAll)
	require.NoError(t, err)
	assert.Len(t, res.Logs, 1)

	res, err = svc.History(ctx, deviceID, domain.PeriodAll)
	require.NoError(t, err)
	assert.Empty(t, res.Logs)
}
