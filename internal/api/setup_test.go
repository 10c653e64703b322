package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fitguide/fitness-app/internal/ai"
	"fitguide/fitness-app/internal/api"
	"fitguide/fitness-app/internal/catalog"
	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/localcache"
	"fitguide/fitness-app/internal/metrics"
	"fitguide/fitness-app/internal/repository"
	"fitguide/fitness-app/internal/service"
	"fitguide/fitness-app/internal/workoutlog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func (r *memUsers) Create(_ context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return "", repository.ErrDuplicate
	}
	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	r.users[u.Email] = u
	return u.ID, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memProfiles struct {
	mu       sync.Mutex
	profiles map[string]domain.UserProfile
}

func (r *memProfiles) GetByID(_ context.Context, userID string) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memProfiles) Upsert(_ context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = *profile
	return nil
}

type memLogs struct {
	mu        sync.Mutex
	logs      []domain.WorkoutLog
	deleteErr error
}

func (r *memLogs) Upsert(_ context.Context, l *domain.WorkoutLog) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *l
	stored.ID = uuid.NewString()
	stored.LocalID = l.ID
	stored.State = domain.SyncStateSynced
	r.logs = append(r.logs, stored)
	return stored.ID, nil
}

func (r *memLogs) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutLog, error) {
	return r.ListByRange(ctx, userID, time.Time{}, time.Time{})
}

func (r *memLogs) ListByRange(_ context.Context, userID string, from, _ time.Time) ([]domain.WorkoutLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.WorkoutLog
	for _, l := range r.logs {
		if l.UserID == userID && !l.CompletedAt.Before(from) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLogs) ReassignOwner(_ context.Context, from, to string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.logs {
		if r.logs[i].UserID == from {
			r.logs[i].UserID = to
			n++
		}
	}
	return n, nil
}

func (r *memLogs) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

type testServer struct {
	router  *gin.Engine
	store   *workoutlog.Store
	logs    *memLogs
	cache   *localcache.MemoryCache
	metrics *metrics.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	metricsManager, registry := metrics.NewTestManagerAndRegistry()
	logs := &memLogs{}
	cache := localcache.NewMemoryCache()
	store := workoutlog.NewStore(logs, cache, metricsManager, workoutlog.Config{})
	t.Cleanup(store.Wait)

	profileSvc := service.NewProfileService(&memProfiles{profiles: map[string]domain.UserProfile{}})
	exerciseSvc := service.NewExerciseService(catalog.Default(), profileSvc, 0)
	coach := ai.NewCoach(nil, metricsManager)

	router := gin.New()
	api.SetupRoutes(router, api.Services{
		Auth:     service.NewAuthService(&memUsers{users: map[string]domain.User{}}, store, profileSvc, "test-secret", time.Hour),
		Profile:  profileSvc,
		Exercise: exerciseSvc,
		Workout:  service.NewWorkoutService(store, exerciseSvc),
		Coach:    service.NewCoachService(coach, profileSvc),
		Scan:     service.NewScanService(nil, coach),
		Devices:  store,
	}, metricsManager, registry)

	return &testServer{
		router:  router,
		store:   store,
		logs:    logs,
		cache:   cache,
		metrics: metricsManager,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func deviceHeader(id string) map[string]string {
	return map[string]string{api.HeaderDeviceID: id}
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func homeProfileBody() map[string]any {
	return map[string]any{
		"firstName": "Sam",
		"lastName":  "Lee",
		"age":       30,
		"gender":    "Male",
		"goal":      "Stay Fit",
		"height":    170,
		"weight":    65,
		"location":  "Home",
	}
}
