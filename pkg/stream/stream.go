// Package stream provides the item type and plumbing shared by channel-based
// observables: a value-or-error item, a context-aware send, and a change hub.
package stream

import (
	"context"
	"sync"
)

// Item is one emission of an observable: a value, or the error that replaced it.
type Item[T any] struct {
	Value T
	Err   error
}

// Of wraps a value.
func Of[T any](v T) Item[T] { return Item[T]{Value: v} }

// Failed wraps an error.
func Failed[T any](err error) Item[T] { return Item[T]{Err: err} }

// Send delivers v on ch unless ctx is done first. It reports whether v was delivered.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

// Hub fans change signals out to subscribers. Signals coalesce: a subscriber
// that has not consumed the previous signal sees a single pending one.
type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a subscriber. The returned func unregisters it and is safe to call twice.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
		})
	}
}

// Notify signals every subscriber without blocking.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
