package localcache

import (
	"context"
	"sync"

	"fitguide/fitness-app/internal/domain"
)

// MemoryCache is a process-local cache, used by tests and when no
// persistent local storage is configured. Errors can be injected.
type MemoryCache struct {
	mu       sync.Mutex
	logs     []domain.WorkoutLog
	deviceID string

	// SaveErr, when set, is returned by SaveLogs without saving.
	SaveErr error
	// LoadErr, when set, is returned by LoadLogs.
	LoadErr error
}

var _ Cache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) LoadLogs(_ context.Context) ([]domain.WorkoutLog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.LoadErr != nil {
		return nil, c.LoadErr
	}
	return cloneLogs(c.logs), nil
}

func (c *MemoryCache) SaveLogs(_ context.Context, logs []domain.WorkoutLog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SaveErr != nil {
		return c.SaveErr
	}
	c.logs = cloneLogs(logs)
	return nil
}

func (c *MemoryCache) DeviceID(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deviceID, nil
}

func (c *MemoryCache) SetDeviceID(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deviceID = id
	return nil
}

func (c *MemoryCache) ClearDeviceID(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deviceID = ""
	return nil
}

func cloneLogs(logs []domain.WorkoutLog) []domain.WorkoutLog {
	out := make([]domain.WorkoutLog, len(logs))
	for i, l := range logs {
		l.Muscles = append([]string(nil), l.Muscles...)
		out[i] = l
	}
	return out
}
