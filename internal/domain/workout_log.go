package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// TempIDPrefix marks ids generated locally before the remote store assigned one.
	// Remote ids never carry it, so the two id spaces cannot collide.
	TempIDPrefix = "local_"
	// DeviceIDPrefix marks anonymous owners that can still be migrated.
	DeviceIDPrefix = "device_"

	dayLayout = "2006-01-02"
)

var ErrInvalidTransition = errors.New("invalid workout log state transition")

// SyncState tracks a log entry relative to remote durability.
type SyncState string

const (
	SyncStatePending  SyncState = "pending"
	SyncStateSynced   SyncState = "synced"
	SyncStateMigrated SyncState = "migrated"
)

// WorkoutLog records one completed exercise. The exercise fields are a
// snapshot taken at completion time since the catalog may change later.
type WorkoutLog struct {
	ID           string    `json:"id"`
	LocalID      string    `json:"local_id,omitempty"` // temporary id the entry was recorded under
	UserID       string    `json:"user_id"`
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	Category     Category  `json:"category"`
	Muscles      []string  `json:"muscles"`
	Sets         int       `json:"sets"`
	Reps         string    `json:"reps"`
	CompletedAt  time.Time `json:"completed_at"`
	CreatedAt    time.Time `json:"created_at"`
	Duration     int       `json:"duration,omitempty"` // seconds spent on the exercise
	State        SyncState `json:"state,omitempty"`
}

// NewTempID returns a fresh id in the local id space.
func NewTempID() string {
	return TempIDPrefix + uuid.NewString()
}

// NewDeviceID returns a fresh anonymous owner id.
func NewDeviceID() string {
	return DeviceIDPrefix + uuid.NewString()
}

func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

func IsDeviceID(id string) bool {
	return strings.HasPrefix(id, DeviceIDPrefix)
}

// NewPendingLog snapshots the exercise into a Pending entry owned by userID.
func NewPendingLog(userID string, ex *Exercise, completedAt time.Time, duration int) WorkoutLog {
	muscles := make([]string, len(ex.Muscles))
	copy(muscles, ex.Muscles)
	return WorkoutLog{
		ID:           NewTempID(),
		UserID:       userID,
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Category:     ex.Category,
		Muscles:      muscles,
		Sets:         ex.Sets,
		Reps:         ex.Reps,
		CompletedAt:  completedAt,
		CreatedAt:    completedAt,
		Duration:     duration,
		State:        SyncStatePending,
	}
}

// MarkSynced moves a Pending entry to Synced under the remote id.
// Every other field, CompletedAt included, is kept.
func (l WorkoutLog) MarkSynced(remoteID string) (WorkoutLog, error) {
	if l.State != SyncStatePending || !IsTempID(l.ID) {
		return l, fmt.Errorf("%w: %s is %s", ErrInvalidTransition, l.ID, l.State)
	}
	if remoteID == "" || IsTempID(remoteID) {
		return l, fmt.Errorf("%w: bad remote id %q", ErrInvalidTransition, remoteID)
	}
	l.LocalID = l.ID
	l.ID = remoteID
	l.State = SyncStateSynced
	return l, nil
}

// Reown changes the owner. Synced entries become Migrated; Pending ones stay Pending.
func (l WorkoutLog) Reown(userID string) WorkoutLog {
	l.UserID = userID
	if l.State == SyncStateSynced {
		l.State = SyncStateMigrated
	}
	return l
}

// Day is the calendar day (UTC) of the completion timestamp.
func (l *WorkoutLog) Day() string {
	return l.CompletedAt.UTC().Format(dayLayout)
}

// DayGroup is one presentation bucket of the progress view.
type DayGroup struct {
	Date string       `json:"date"`
	Logs []WorkoutLog `json:"logs"`
}

// SortByCompletion orders logs newest first. The sort is stable so entries
// sharing a timestamp keep their relative order.
func SortByCompletion(logs []WorkoutLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CompletedAt.After(logs[j].CompletedAt)
	})
}

// GroupByDay buckets logs already sorted newest first by their completion day.
func GroupByDay(logs []WorkoutLog) []DayGroup {
	var groups []DayGroup
	index := map[string]int{}
	for _, l := range logs {
		day := l.Day()
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Date: day})
		}
		groups[i].Logs = append(groups[i].Logs, l)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// Period selects a window of the progress history.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod falls back to PeriodAll for unknown values.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(s)) {
	case PeriodToday:
		return PeriodToday
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	}
	return PeriodAll
}

// PeriodStart is the first instant (UTC midnight) inside the period ending at
// now. ok is false for PeriodAll, which has no lower bound.
func PeriodStart(period Period, now time.Time) (start time.Time, ok bool) {
	now = now.UTC()
	switch period {
	case PeriodToday:
	case PeriodWeek:
		now = now.AddDate(0, 0, -7)
	case PeriodMonth:
		now = now.AddDate(0, 0, -30)
	default:
		return time.Time{}, false
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
}

// FilterGroups keeps the day groups inside the period ending at now.
func FilterGroups(groups []DayGroup, period Period, now time.Time) []DayGroup {
	start, ok := PeriodStart(period, now)
	if !ok {
		return groups
	}
	from := start.Format(dayLayout)
	out := make([]DayGroup, 0, len(groups))
	for _, g := range groups {
		if g.Date >= from {
			out = append(out, g)
		}
	}
	return out
}

// WorkoutStats counts logs per category.
type WorkoutStats struct {
	TotalWorkouts int `json:"totalWorkouts"`
	StrengthCount int `json:"strengthCount"`
	CardioCount   int `json:"cardioCount"`
	CoreCount     int `json:"coreCount"`
}

func SummarizeGroups(groups []DayGroup) WorkoutStats {
	var s WorkoutStats
	for _, g := range groups {
		for _, l := range g.Logs {
			s.TotalWorkouts++
			switch l.Category {
			case CategoryStrength:
				s.StrengthCount++
			case CategoryCardio:
				s.CardioCount++
			case CategoryCore:
				s.CoreCount++
			}
		}
	}
	return s
}
