package service

import (
	"sync"

	"github.com/MKhiriev/go-family-organizer/models"
)

// statusTracker owns the engine's observable [models.SyncStatus]. Reads
// return a copy; subscribers get every published value on a buffered channel
// and are dropped behind rather than blocking the sync cycle.
type statusTracker struct {
	mu          sync.RWMutex
	current     models.SyncStatus
	subscribers map[int]chan models.SyncStatus
	nextID      int
}

func newStatusTracker() *statusTracker {
	return &statusTracker{
		current:     models.SyncStatus{State: models.SyncStateIdle},
		subscribers: make(map[int]chan models.SyncStatus),
	}
}

func (t *statusTracker) Get() models.SyncStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func (t *statusTracker) Set(status models.SyncStatus) {
	t.mu.Lock()
	t.current = status
	for _, ch := range t.subscribers {
		select {
		case ch <- status:
		default:
		}
	}
	t.mu.Unlock()
}

// SetIdleIfCompleted resets a lingering completed status back to idle. Used
// by the display-delay timer; a status that moved on in the meantime is left
// alone.
func (t *statusTracker) SetIdleIfCompleted() {
	t.mu.Lock()
	if t.current.State == models.SyncStateCompleted {
		t.current = models.SyncStatus{State: models.SyncStateIdle}
		for _, ch := range t.subscribers {
			select {
			case ch <- t.current:
			default:
			}
		}
	}
	t.mu.Unlock()
}

func (t *statusTracker) Subscribe() (<-chan models.SyncStatus, func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	ch := make(chan models.SyncStatus, 8)
	t.subscribers[id] = ch
	t.mu.Unlock()

	cancel := func() {
		t.mu.Lock()
		if sub, ok := t.subscribers[id]; ok {
			delete(t.subscribers, id)
			close(sub)
		}
		t.mu.Unlock()
	}

	return ch, cancel
}
