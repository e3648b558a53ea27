package notifier

import (
	"sync"
	"time"
)

// Toast display durations used by the storefront frontend.
const (
	DurationShort = 1500 * time.Millisecond
	DurationLong  = 1800 * time.Millisecond
)

type (
	// Notification is a short-lived status message the frontend shows
	// and auto-dismisses after the suggested duration.
	Notification struct {
		Message    string `json:"message"`
		DurationMS int64  `json:"duration_ms"`
	}

	// Notifier queues transient notifications per session. Drain hands
	// back everything pending and empties the queue.
	Notifier interface {
		Notify(sessionID, message string, duration time.Duration)
		Drain(sessionID string) []Notification
	}

	memoryNotifier struct {
		mu      sync.Mutex
		pending map[string][]Notification
	}
)

func NewNotifier() Notifier {
	return &memoryNotifier{
		pending: make(map[string][]Notification),
	}
}

func (n *memoryNotifier) Notify(sessionID, message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending[sessionID] = append(n.pending[sessionID], Notification{
		Message:    message,
		DurationMS: duration.Milliseconds(),
	})
}

func (n *memoryNotifier) Drain(sessionID string) []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	pending := n.pending[sessionID]
	delete(n.pending, sessionID)
	if pending == nil {
		return []Notification{}
	}
	return pending
}
