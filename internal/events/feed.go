package events

import (
	"context"
	"sync"
)

// DefaultFeedCapacity is used when a non-positive capacity is configured
const DefaultFeedCapacity = 50

// Feed keeps the most recent events in a fixed size ring
type Feed struct {
	mu     sync.RWMutex
	events []Event
	next   int
	full   bool
}

// NewFeed creates a feed holding up to capacity events
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &Feed{events: make([]Event, capacity)}
}

// Notify records the event, overwriting the oldest one when full
func (f *Feed) Notify(_ context.Context, event Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events[f.next] = event
	f.next = (f.next + 1) % len(f.events)
	if f.next == 0 {
		f.full = true
	}
	return nil
}

// Recent returns up to limit events, newest first. A non-positive limit returns all.
func (f *Feed) Recent(limit int) []Event {
	f.mu.RLock()
	defer f.mu.RUnlock()

	size := f.next
	if f.full {
		size = len(f.events)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]Event, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (f.next - 1 - i + len(f.events)) % len(f.events)
		out = append(out, f.events[idx])
	}
	return out
}
