package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"
	"fitguide/fitness-app/internal/storage"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return "", repository.ErrDuplicate
	}
	stored := *user
	stored.ID = uuid.NewString()
	r.byEmail[user.Email] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.UserProfile
	getErr   error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]domain.UserProfile{}}
}

func (r *fakeProfileRepo) GetByID(_ context.Context, userID string) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = *profile
	return nil
}

type fakeMigrator struct {
	err   error
	calls [][2]string
	moved int64
}

func (m *fakeMigrator) Migrate(_ context.Context, from, to string) (int64, error) {
	m.calls = append(m.calls, [2]string{from, to})
	if m.err != nil {
		return 0, m.err
	}
	return m.moved, nil
}

type fakeWorkoutRepo struct {
	mu      sync.Mutex
	logs    map[string]domain.WorkoutLog
	byLocal map[string]string
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{
		logs:    map[string]domain.WorkoutLog{},
		byLocal: map[string]string{},
	}
}

func (r *fakeWorkoutRepo) Upsert(_ context.Context, l *domain.WorkoutLog) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byLocal[l.ID]; ok {
		return id, nil
	}
	stored := *l
	stored.ID = uuid.NewString()
	stored.LocalID = l.ID
	stored.State = domain.SyncStateSynced
	r.logs[stored.ID] = stored
	r.byLocal[l.ID] = stored.ID
	return stored.ID, nil
}

func (r *fakeWorkoutRepo) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutLog, error) {
	return r.ListByRange(ctx, userID, time.Time{}, time.Time{})
}

func (r *fakeWorkoutRepo) ListByRange(_ context.Context, userID string, from, to time.Time) ([]domain.WorkoutLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.WorkoutLog
	for _, l := range r.logs {
		if l.UserID != userID || l.CompletedAt.Before(from) || (!to.IsZero() && !l.CompletedAt.Before(to)) {
			continue
		}
		out = append(out, l)
	}
	domain.SortByCompletion(out)
	return out, nil
}

func (r *fakeWorkoutRepo) ReassignOwner(_ context.Context, from, to string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, l := range r.logs {
		if l.UserID == from {
			l.UserID = to
			r.logs[id] = l
			n++
		}
	}
	return n, nil
}

func (r *fakeWorkoutRepo) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, l := range r.logs {
		if l.UserID == userID {
			delete(r.logs, id)
		}
	}
	return nil
}

type fakeStorage struct {
	objects map[string]*storage.Object
	deleted []string
	getErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]*storage.Object{}}
}

func (s *fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://bucket.example.com/" + objectKey + "?X-Amz-Signature=test", nil
}

func (s *fakeStorage) GetObject(_ context.Context, objectKey string) (*storage.Object, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	obj, ok := s.objects[objectKey]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return obj, nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	s.deleted = append(s.deleted, objectKey)
	return nil
}

var errBoom = errors.New("boom")
