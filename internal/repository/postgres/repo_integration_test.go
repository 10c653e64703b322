//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("fitguide"),
		postgrescontainer.WithUsername("fitguide"),
		postgrescontainer.WithPassword("fitguide"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var pool *pgxpool.Pool
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err = NewPool(ctx, connStr)
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, EnsureSchema(ctx, pool))
	return pool
}

func pendingLog(userID string, completedAt time.Time) domain.WorkoutLog {
	ex := &domain.Exercise{
		ID:       "leg_1",
		Name:     "Bodyweight Squats",
		Muscles:  []string{"Legs"},
		Sets:     3,
		Reps:     "15",
		Category: domain.CategoryStrength,
	}
	return domain.NewPendingLog(userID, ex, completedAt, 90)
}

func TestWorkoutLogRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkoutLogRepo(setupDB(t))

	device := domain.NewDeviceID()
	older := pendingLog(device, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	newer := pendingLog(device, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	id1, err := repo.Upsert(ctx, &older)
	require.NoError(t, err)
	assert.False(t, domain.IsTempID(id1))

	again, err := repo.Upsert(ctx, &older)
	require.NoError(t, err)
	assert.Equal(t, id1, again, "upsert of the same local id must not duplicate")

	_, err = repo.Upsert(ctx, &newer)
	require.NoError(t, err)

	logs, err := repo.ListByUser(ctx, device)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].CompletedAt.Equal(newer.CompletedAt))
	assert.Equal(t, []string{"Legs"}, logs[0].Muscles)
	assert.Equal(t, 90, logs[0].Duration)

	ranged, err := repo.ListByRange(ctx, device, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), time.Time{})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.True(t, ranged[0].CompletedAt.Equal(newer.CompletedAt))

	ranged, err = repo.ListByRange(ctx, device, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), newer.CompletedAt)
	require.NoError(t, err)
	assert.Len(t, ranged, 1)

	moved, err := repo.ReassignOwner(ctx, device, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, moved)

	moved, err = repo.ReassignOwner(ctx, device, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, moved)

	logs, err = repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	require.NoError(t, repo.DeleteByUser(ctx, "user-1"))
	logs, err = repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestProfileAndUserRepo(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	profiles := NewProfileRepo(db)
	users := NewUserRepo(db)

	_, err := profiles.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	p := &domain.UserProfile{
		ID:        "user-1",
		FirstName: "Ana",
		LastName:  "Lee",
		HeightCm:  170,
		WeightKg:  65,
		Location:  domain.LocationGym,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, profiles.Upsert(ctx, p))
	p.AvailableEquipment = []string{"Dumbbells"}
	require.NoError(t, profiles.Upsert(ctx, p))

	got, err := profiles.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dumbbells"}, got.AvailableEquipment)
	assert.Equal(t, domain.LocationGym, got.Location)

	u := &domain.User{Email: "ana@example.com", PasswordHash: "hash"}
	id, err := users.Create(ctx, u)
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{Email: "ana@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	byEmail, err := users.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
}
