// Package localcache is the device-local side of workout log storage: one
// list of logs for every owner plus the anonymous device identity.
package localcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fitguide/fitness-app/internal/domain"
)

// Key names shared by every backend.
const (
	LogsKey     = "fitguide_workout_logs"
	DeviceIDKey = "fitguide_device_id"
)

var ErrCorrupt = errors.New("local cache is corrupt")

// Cache persists the local log list and the device identity.
// Implementations need not be safe for concurrent read-modify-write; the
// workout log store serializes access.
type Cache interface {
	// LoadLogs returns every cached log, or an empty list when none were saved.
	LoadLogs(ctx context.Context) ([]domain.WorkoutLog, error)
	// SaveLogs replaces the cached list.
	SaveLogs(ctx context.Context, logs []domain.WorkoutLog) error
	// DeviceID returns the stored device id, or "" when there is none.
	DeviceID(ctx context.Context) (string, error)
	SetDeviceID(ctx context.Context, id string) error
	ClearDeviceID(ctx context.Context) error
}

func encodeLogs(logs []domain.WorkoutLog) ([]byte, error) {
	if logs == nil {
		logs = []domain.WorkoutLog{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return nil, fmt.Errorf("encode logs: %w", err)
	}
	return data, nil
}

func decodeLogs(data []byte) ([]domain.WorkoutLog, error) {
	if len(data) == 0 {
		return []domain.WorkoutLog{}, nil
	}
	var logs []domain.WorkoutLog
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if logs == nil {
		logs = []domain.WorkoutLog{}
	}
	return logs, nil
}
