// Package notify holds the in-process notification log used when no Redis
// address is configured.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// DefaultCapacity bounds the log when no capacity is configured.
const DefaultCapacity = 500

// Ring is a fixed-size, mutex-guarded circular buffer. Once full, every
// Append overwrites the oldest entry.
type Ring struct {
	mu      sync.Mutex
	entries []domain.Notification
	start   int
	size    int
	now     func() time.Time
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{entries: make([]domain.Notification, capacity), now: time.Now}
}

func (r *Ring) Append(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := domain.Notification{Message: message, CreatedAt: r.now().UTC()}
	if r.size < len(r.entries) {
		r.entries[(r.start+r.size)%len(r.entries)] = n
		r.size++
		return nil
	}
	r.entries[r.start] = n
	r.start = (r.start + 1) % len(r.entries)
	return nil
}

// List returns a snapshot, oldest first.
func (r *Ring) List(context.Context) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Notification, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.entries[(r.start+i)%len(r.entries)]
	}
	return out, nil
}
