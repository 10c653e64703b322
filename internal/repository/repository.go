package repository

import (
	"context"
	"time"

	"fitguide/fitness-app/internal/domain"
)

// Error constants for the repository layer, shared by every driver.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ProfileRepository stores one profile per user id (the user_profiles relation).
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.UserProfile, error)
	// Upsert inserts the profile or replaces the stored one with the same id.
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}

// WorkoutLogRepository is the durable remote store for workout logs.
type WorkoutLogRepository interface {
	// Upsert stores a log created locally under a temporary id and returns
	// the remote id. Repeating the call for the same temporary id returns the
	// same remote id without creating a second row.
	Upsert(ctx context.Context, log *domain.WorkoutLog) (string, error)
	// ListByUser returns the user's logs, newest completion first.
	ListByUser(ctx context.Context, userID string) ([]domain.WorkoutLog, error)
	// ListByRange returns the user's logs completed in [from, to), newest
	// first. A zero to leaves the range open-ended.
	ListByRange(ctx context.Context, userID string, from, to time.Time) ([]domain.WorkoutLog, error)
	// ReassignOwner moves every log owned by fromUserID to toUserID in one
	// bulk operation and reports how many rows changed. Running it again is a no-op.
	ReassignOwner(ctx context.Context, fromUserID, toUserID string) (int64, error)
	// DeleteByUser removes every log owned by userID.
	DeleteByUser(ctx context.Context, userID string) error
}
