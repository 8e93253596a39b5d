package worker

import (
	"sync"
	"time"
)

// UnreadTracker holds the last unread notification count seen by the poller.
type UnreadTracker struct {
	mu        sync.RWMutex
	count     int
	updatedAt time.Time
	maxAge    time.Duration
	now       func() time.Time
}

// NewUnreadTracker returns a tracker whose count is fresh for maxAge after each update.
func NewUnreadTracker(maxAge time.Duration) *UnreadTracker {
	return &UnreadTracker{
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Set records count as of now.
func (t *UnreadTracker) Set(count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count = count
	t.updatedAt = t.now()
}

// Invalidate forgets the count so the next read asks the API.
func (t *UnreadTracker) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.updatedAt = time.Time{}
}

// Fresh returns the count when it was set within maxAge.
func (t *UnreadTracker) Fresh() (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.updatedAt.IsZero() || t.now().Sub(t.updatedAt) > t.maxAge {
		return 0, false
	}

	return t.count, true
}
