// Package memory is the in-process preference backend: go-cache entries that
// never expire, plus a hub for change signals.
package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/heartmarshall/simplehiit-backend/pkg/stream"
)

// Backend keeps preferences in process memory. The zero value is not usable; call New.
type Backend struct {
	c   *gocache.Cache
	hub *stream.Hub
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{
		c:   gocache.New(gocache.NoExpiration, 0),
		hub: stream.NewHub(),
	}
}

// Put stores value under key and signals watchers.
func (b *Backend) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.c.Set(key, value, gocache.NoExpiration)
	b.hub.Notify()
	return nil
}

// Snapshot copies every stored key.
func (b *Backend) Snapshot(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := b.c.Items()
	values := make(map[string]string, len(items))
	for k, item := range items {
		if s, ok := item.Object.(string); ok {
			values[k] = s
		}
	}
	return values, nil
}

// Clear drops every key and signals watchers.
func (b *Backend) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.c.Flush()
	b.hub.Notify()
	return nil
}

// Changes subscribes to change signals until the returned func is called.
func (b *Backend) Changes(ctx context.Context) (<-chan struct{}, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	ch, unsubscribe := b.hub.Subscribe()
	return ch, unsubscribe, nil
}

// Subscribers reports how many watchers are attached.
func (b *Backend) Subscribers() int { return b.hub.Len() }
