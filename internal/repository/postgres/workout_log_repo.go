package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkoutLogRepo struct {
	db *pgxpool.Pool
}

var _ repository.WorkoutLogRepository = (*WorkoutLogRepo)(nil)

func NewWorkoutLogRepo(db *pgxpool.Pool) *WorkoutLogRepo {
	return &WorkoutLogRepo{
		db: db,
	}
}

// Upsert inserts the log under a fresh uuid, or returns the id already
// assigned to the same local id.
func (r *WorkoutLogRepo) Upsert(ctx context.Context, l *domain.WorkoutLog) (string, error) {
	if l.UserID == "" || l.ExerciseID == "" || !domain.IsTempID(l.ID) {
		return "", errors.New("workout log requires userId, exerciseId and a temporary id")
	}

	muscles := l.Muscles
	if muscles == nil {
		muscles = []string{}
	}

	var id string
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_logs
				(id, local_id, user_id, exercise_id, exercise_name, category, muscles, sets, reps, completed_at, created_at, duration)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (local_id) DO UPDATE SET local_id = EXCLUDED.local_id
			RETURNING id;`,
		uuid.NewString(), l.ID, l.UserID, l.ExerciseID, l.ExerciseName, string(l.Category), muscles,
		l.Sets, l.Reps, l.CompletedAt.UTC(), l.CreatedAt.UTC(), l.Duration,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert workout log: %w", err)
	}
	return id, nil
}

func (r *WorkoutLogRepo) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutLog, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, COALESCE(local_id, ''), user_id, exercise_id, exercise_name, category, muscles, sets, reps, completed_at, created_at, duration
			FROM workout_logs
			WHERE user_id = $1
			ORDER BY completed_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2logs(rows)
}

func (r *WorkoutLogRepo) ReassignOwner(ctx context.Context, fromUserID, toUserID string) (int64, error) {
	if fromUserID == "" || toUserID == "" {
		return 0, errors.New("both owners are required for reassignment")
	}
	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_logs SET user_id = $1 WHERE user_id = $2;`,
		toUserID, fromUserID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *WorkoutLogRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM workout_logs WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrDeleteFailed, err)
	}
	return nil
}

func (r *WorkoutLogRepo) ListByRange(ctx context.Context, userID string, from, to time.Time) ([]domain.WorkoutLog, error) {
	var upper *time.Time
	if !to.IsZero() {
		t := to.UTC()
		upper = &t
	}
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, COALESCE(local_id, ''), user_id, exercise_id, exercise_name, category, muscles, sets, reps, completed_at, created_at, duration
			FROM workout_logs
			WHERE user_id = $1
				AND completed_at >= $2
				AND ($3::timestamptz IS NULL OR completed_at < $3)
			ORDER BY completed_at DESC;`,
		userID, from.UTC(), upper,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2logs(rows)
}

func rows2logs(rows pgx.Rows) ([]domain.WorkoutLog, error) {
	logs := []domain.WorkoutLog{}
	for rows.Next() {
		var (
			l        domain.WorkoutLog
			category string
		)
		if err := rows.Scan(
			&l.ID, &l.LocalID, &l.UserID, &l.ExerciseID, &l.ExerciseName, &category, &l.Muscles,
			&l.Sets, &l.Reps, &l.CompletedAt, &l.CreatedAt, &l.Duration,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		l.Category = domain.Category(category)
		l.State = domain.SyncStateSynced
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}
