// Package workoutlog keeps workout logs in two places: a device-local cache
// written synchronously on every record, and a remote store synced in the
// background. Reads merge both by id with the remote copy winning.
package workoutlog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/localcache"
	"fitguide/fitness-app/internal/metrics"
	"fitguide/fitness-app/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	DefaultReadTimeout  = 2 * time.Second
	DefaultWriteTimeout = 5 * time.Second
)

var (
	ErrNoOwner         = errors.New("workout log owner is required")
	ErrLocalWrite      = errors.New("local workout log storage failed")
	ErrLocalRead       = errors.New("local workout logs unreadable")
	ErrMigrationFailed = errors.New("workout log migration failed")
)

type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadResult is the merged view of a user's logs. Offline is set when the
// remote store could not be read and only local entries are shown.
type LoadResult struct {
	Logs    []domain.WorkoutLog `json:"logs"`
	Days    []domain.DayGroup   `json:"days"`
	Offline bool                `json:"offline"`
}

type Store struct {
	remote  repository.WorkoutLogRepository
	local   localcache.Cache
	metrics *metrics.Manager

	readTimeout  time.Duration
	writeTimeout time.Duration

	// mu serializes every read-modify-write of the local cache.
	mu       sync.Mutex
	syncs    sync.WaitGroup
	notifier *notifier
	now      func() time.Time
}

func NewStore(
	remote repository.WorkoutLogRepository,
	local localcache.Cache,
	metricsManager *metrics.Manager,
	cfg Config,
) *Store {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	return &Store{
		remote:       remote,
		local:        local,
		metrics:      metricsManager,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		notifier:     newNotifier(),
		now:          time.Now,
	}
}

// Subscribe returns a channel of changes to userID's logs and a function
// that ends the subscription and closes the channel.
func (s *Store) Subscribe(userID string) (<-chan Change, func()) {
	return s.notifier.subscribe(userID)
}

// Wait blocks until every background sync started so far has finished.
func (s *Store) Wait() {
	s.syncs.Wait()
}

// DeviceID returns the anonymous device identity, creating and persisting
// one on first use.
func (s *Store) DeviceID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.local.DeviceID(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLocalWrite, err)
	}
	if id != "" {
		return id, nil
	}
	id = domain.NewDeviceID()
	if err := s.local.SetDeviceID(ctx, id); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLocalWrite, err)
	}
	log.Debugf("workout log store: created device identity %s", id)
	return id, nil
}

// StoredDeviceID returns the persisted device identity without creating one.
func (s *Store) StoredDeviceID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.local.DeviceID(ctx)
}

// Record writes a Pending entry to the local cache and returns it once it is
// durable there. The remote upsert runs afterwards in the background and is
// never retried; its failure leaves the Pending entry as the record.
func (s *Store) Record(ctx context.Context, userID string, ex *domain.Exercise, durationSec int) (domain.WorkoutLog, error) {
	if userID == "" {
		return domain.WorkoutLog{}, ErrNoOwner
	}

	entry := domain.NewPendingLog(userID, ex, s.now().UTC(), durationSec)

	s.mu.Lock()
	err := s.mutateLocal(ctx, func(logs []domain.WorkoutLog) []domain.WorkoutLog {
		return append([]domain.WorkoutLog{entry}, logs...)
	})
	s.mu.Unlock()
	if err != nil {
		return domain.WorkoutLog{}, err
	}

	s.metrics.CounterLogsRecorded.Inc()
	s.notifier.publish(Change{Type: ChangeRecorded, UserID: userID, Log: &entry})

	s.syncs.Add(1)
	go s.sync(entry)

	return entry, nil
}

// sync runs detached from any request: it has its own deadline and a
// finished request does not cancel it.
func (s *Store) sync(entry domain.WorkoutLog) {
	defer s.syncs.Done()
	s.metrics.GaugePendingSyncs.Inc()
	defer s.metrics.GaugePendingSyncs.Dec()

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	start := time.Now()
	remoteID, err := s.remote.Upsert(ctx, &entry)
	s.metrics.HistSyncDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.CounterSyncs.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warnf("workout log store: sync of %s failed, kept as pending: %s", entry.ID, err)
		return
	}

	// The upsert may have used up ctx; the patch gets a deadline of its own.
	pctx, pcancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer pcancel()

	var (
		synced   domain.WorkoutLog
		found    bool
		reowned  string
		patchErr error
	)
	s.mu.Lock()
	err = s.mutateLocal(pctx, func(logs []domain.WorkoutLog) []domain.WorkoutLog {
		for i := range logs {
			if logs[i].ID != entry.ID {
				continue
			}
			found = true
			synced, patchErr = logs[i].MarkSynced(remoteID)
			if patchErr != nil {
				return logs
			}
			if synced.UserID != entry.UserID {
				// migrated while the upsert was in flight
				reowned = synced.UserID
				synced.State = domain.SyncStateMigrated
			}
			logs[i] = synced
			return logs
		}
		return logs
	})
	s.mu.Unlock()

	switch {
	case err != nil:
		s.metrics.CounterSyncs.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Errorf("workout log store: patch local id %s -> %s: %s", entry.ID, remoteID, err)
		return
	case patchErr != nil:
		s.metrics.CounterSyncs.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Errorf("workout log store: %s", patchErr)
		return
	case !found:
		// cleared locally, or already patched by a read, while the upsert was in flight
		log.Debugf("workout log store: %s synced as %s but no longer cached", entry.ID, remoteID)
	}

	if reowned != "" {
		if _, err := s.remote.ReassignOwner(pctx, entry.UserID, reowned); err != nil {
			log.Warnf("workout log store: re-own late sync %s to %s: %s", remoteID, reowned, err)
		}
	}

	s.metrics.CounterSyncs.WithLabelValues(metrics.OutcomeSynced).Inc()
	log.Debugf("workout log store: %s synced as %s", entry.ID, remoteID)
	if found {
		s.notifier.publish(Change{Type: ChangeSynced, UserID: synced.UserID, Log: &synced})
	}
}

// LoadAll returns the merged, newest-first view of every log owned by userID.
func (s *Store) LoadAll(ctx context.Context, userID string) (LoadResult, error) {
	return s.load(ctx, userID,
		func(ctx context.Context) ([]domain.WorkoutLog, error) {
			return s.remote.ListByUser(ctx, userID)
		},
		func(domain.WorkoutLog) bool { return true },
	)
}

// LoadPeriod is LoadAll restricted to the logs completed inside period.
func (s *Store) LoadPeriod(ctx context.Context, userID string, period domain.Period) (LoadResult, error) {
	start, ok := domain.PeriodStart(period, s.now())
	if !ok {
		return s.LoadAll(ctx, userID)
	}
	return s.load(ctx, userID,
		func(ctx context.Context) ([]domain.WorkoutLog, error) {
			return s.remote.ListByRange(ctx, userID, start, time.Time{})
		},
		func(l domain.WorkoutLog) bool { return !l.CompletedAt.Before(start) },
	)
}

func (s *Store) load(
	ctx context.Context,
	userID string,
	fetch func(context.Context) ([]domain.WorkoutLog, error),
	keep func(domain.WorkoutLog) bool,
) (LoadResult, error) {
	if userID == "" {
		return LoadResult{}, ErrNoOwner
	}

	var result LoadResult

	rctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	remote, err := fetch(rctx)
	cancel()
	if err != nil {
		s.metrics.CounterRemoteReadFails.Inc()
		log.Warnf("workout log store: remote read for %s failed, showing local logs: %s", userID, err)
		remote = nil
		result.Offline = true
	}

	s.mu.Lock()
	local, err := s.local.LoadLogs(ctx)
	s.mu.Unlock()
	if err != nil {
		return LoadResult{}, fmt.Errorf("%w: %w", ErrLocalRead, err)
	}

	merged := make([]domain.WorkoutLog, 0, len(remote)+len(local))
	seen := make(map[string]struct{}, len(remote)+len(local))
	// remote id by the temporary id its row was recorded under
	remoteIDs := make(map[string]string, len(remote))
	for _, l := range remote {
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		if l.LocalID != "" {
			remoteIDs[l.LocalID] = l.ID
		}
		merged = append(merged, l)
	}
	// Pending entries the remote already holds, whose id patch was lost or
	// has not happened yet.
	adopted := map[string]string{}
	for _, l := range local {
		if l.UserID != userID || !keep(l) {
			continue
		}
		if remoteID, ok := remoteIDs[l.ID]; ok {
			adopted[l.ID] = remoteID
			continue
		}
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		merged = append(merged, l)
	}
	if len(adopted) > 0 {
		s.adoptRemoteIDs(ctx, adopted)
	}

	domain.SortByCompletion(merged)
	result.Logs = merged
	result.Days = domain.GroupByDay(merged)
	if result.Days == nil {
		result.Days = []domain.DayGroup{}
	}
	return result, nil
}

// adoptRemoteIDs patches cached Pending entries to the remote ids found for
// them on read. Failures only mean the next read matches them again.
func (s *Store) adoptRemoteIDs(ctx context.Context, remoteIDs map[string]string) {
	var patched []domain.WorkoutLog
	s.mu.Lock()
	err := s.mutateLocal(ctx, func(logs []domain.WorkoutLog) []domain.WorkoutLog {
		for i := range logs {
			remoteID, ok := remoteIDs[logs[i].ID]
			if !ok {
				continue
			}
			synced, err := logs[i].MarkSynced(remoteID)
			if err != nil {
				continue
			}
			logs[i] = synced
			patched = append(patched, synced)
		}
		return logs
	})
	s.mu.Unlock()
	if err != nil {
		log.Warnf("workout log store: adopt %d remote ids: %s", len(remoteIDs), err)
		return
	}

	for i := range patched {
		log.Debugf("workout log store: %s found remotely as %s", patched[i].LocalID, patched[i].ID)
		s.notifier.publish(Change{Type: ChangeSynced, UserID: patched[i].UserID, Log: &patched[i]})
	}
}

// Migrate moves every log of an anonymous device to an account. If the
// remote bulk update fails nothing local changes and the device identity is
// kept so the call can be retried. Running it again after success is a no-op.
func (s *Store) Migrate(ctx context.Context, fromDeviceID, toUserID string) (int64, error) {
	if fromDeviceID == "" || fromDeviceID == toUserID {
		return 0, nil
	}
	if toUserID == "" {
		return 0, ErrNoOwner
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	moved, err := s.remote.ReassignOwner(wctx, fromDeviceID, toUserID)
	if err != nil {
		s.metrics.CounterMigrations.WithLabelValues(metrics.OutcomeFailed).Inc()
		return 0, fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}

	s.mu.Lock()
	err = s.mutateLocal(ctx, func(logs []domain.WorkoutLog) []domain.WorkoutLog {
		for i := range logs {
			if logs[i].UserID == fromDeviceID {
				logs[i] = logs[i].Reown(toUserID)
			}
		}
		return logs
	})
	if err == nil {
		var stored string
		stored, err = s.local.DeviceID(ctx)
		if err == nil && stored == fromDeviceID {
			err = s.local.ClearDeviceID(ctx)
		}
	}
	s.mu.Unlock()
	if err != nil {
		s.metrics.CounterMigrations.WithLabelValues(metrics.OutcomeFailed).Inc()
		return moved, fmt.Errorf("%w: remote moved, local update failed: %v", ErrMigrationFailed, err)
	}

	s.metrics.CounterMigrations.WithLabelValues(metrics.OutcomeSynced).Inc()
	log.Infof("workout log store: migrated %d remote logs from %s to %s", moved, fromDeviceID, toUserID)
	s.notifier.publish(Change{Type: ChangeMigrated, UserID: fromDeviceID})
	s.notifier.publish(Change{Type: ChangeMigrated, UserID: toUserID})
	return moved, nil
}

// ClearAll deletes the user's remote logs and then, whatever the remote
// outcome, the user's local ones. A remote failure is still returned.
func (s *Store) ClearAll(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoOwner
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	remoteErr := s.remote.DeleteByUser(wctx, userID)
	cancel()
	if remoteErr != nil {
		log.Warnf("workout log store: remote clear for %s failed, clearing local logs anyway: %s", userID, remoteErr)
		remoteErr = fmt.Errorf("delete remote logs: %w", remoteErr)
	}

	s.mu.Lock()
	localErr := s.mutateLocal(ctx, func(logs []domain.WorkoutLog) []domain.WorkoutLog {
		kept := logs[:0]
		for _, l := range logs {
			if l.UserID != userID {
				kept = append(kept, l)
			}
		}
		return kept
	})
	s.mu.Unlock()

	s.notifier.publish(Change{Type: ChangeCleared, UserID: userID})
	return multierr.Append(remoteErr, localErr)
}

// mutateLocal loads the cached list, applies fn and saves the result.
// Callers hold s.mu.
func (s *Store) mutateLocal(ctx context.Context, fn func([]domain.WorkoutLog) []domain.WorkoutLog) error {
	logs, err := s.local.LoadLogs(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLocalWrite, err)
	}
	if err := s.local.SaveLogs(ctx, fn(logs)); err != nil {
		return fmt.Errorf("%w: %v", ErrLocalWrite, err)
	}
	return nil
}
