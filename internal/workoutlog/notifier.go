package workoutlog

import (
	"sync"

	"fitguide/fitness-app/internal/domain"
)

type ChangeType string

const (
	ChangeRecorded ChangeType = "recorded"
	ChangeSynced   ChangeType = "synced"
	ChangeMigrated ChangeType = "migrated"
	ChangeCleared  ChangeType = "cleared"
)

// Change tells observers that a user's log set changed. Log is set for
// recorded and synced changes.
type Change struct {
	Type   ChangeType         `json:"type"`
	UserID string             `json:"userId"`
	Log    *domain.WorkoutLog `json:"log,omitempty"`
}

const subscriberBuffer = 16

// notifier fans changes out to per-user subscribers. Publishing never blocks:
// a subscriber whose buffer is full misses the change and is expected to
// re-read the full list anyway.
type notifier struct {
	mu   sync.Mutex
	subs map[string]map[chan Change]struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: map[string]map[chan Change]struct{}{}}
}

func (n *notifier) subscribe(userID string) (<-chan Change, func()) {
	ch := make(chan Change, subscriberBuffer)

	n.mu.Lock()
	if n.subs[userID] == nil {
		n.subs[userID] = map[chan Change]struct{}{}
	}
	n.subs[userID][ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs[userID], ch)
			if len(n.subs[userID]) == 0 {
				delete(n.subs, userID)
			}
			n.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (n *notifier) publish(c Change) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs[c.UserID] {
		select {
		case ch <- c:
		default:
		}
	}
}
