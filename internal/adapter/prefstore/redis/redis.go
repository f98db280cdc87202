// Package redis is the shared preference backend: one Redis hash per key
// prefix, with change signals published on a companion channel.
package redis

import (
	"context"
	"fmt"

	rdb "github.com/redis/go-redis/v9"
)

// Backend keeps preferences in a Redis hash shared by every process using the same prefix.
type Backend struct {
	c       *rdb.Client
	hash    string
	channel string
}

// New wraps an existing client. Every key lives in the hash "<prefix>:preferences".
func New(c *rdb.Client, prefix string) *Backend {
	hash := prefix + ":preferences"
	return &Backend{c: c, hash: hash, channel: hash + ":changed"}
}

// Dial opens a client for addr/db and checks it answers.
func Dial(ctx context.Context, addr string, db int, password string) (*rdb.Client, error) {
	c := rdb.NewClient(&rdb.Options{Addr: addr, DB: db, Password: password})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return c, nil
}

// Put writes key and publishes the change in one transaction.
func (b *Backend) Put(ctx context.Context, key, value string) error {
	_, err := b.c.TxPipelined(ctx, func(p rdb.Pipeliner) error {
		p.HSet(ctx, b.hash, key, value)
		p.Publish(ctx, b.channel, key)
		return nil
	})
	return err
}

// Snapshot reads the whole hash.
func (b *Backend) Snapshot(ctx context.Context) (map[string]string, error) {
	return b.c.HGetAll(ctx, b.hash).Result()
}

// Clear deletes the hash and publishes the change in one transaction.
func (b *Backend) Clear(ctx context.Context) error {
	_, err := b.c.TxPipelined(ctx, func(p rdb.Pipeliner) error {
		p.Del(ctx, b.hash)
		p.Publish(ctx, b.channel, "*")
		return nil
	})
	return err
}

// Changes subscribes to the change channel. Signals coalesce: a reader that
// falls behind sees one pending signal, not a backlog.
func (b *Backend) Changes(ctx context.Context) (<-chan struct{}, func(), error) {
	ps := b.c.Subscribe(ctx, b.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("subscribe %s: %w", b.channel, err)
	}

	signals := make(chan struct{}, 1)
	msgs := ps.Channel()
	go func() {
		defer close(signals)
		for range msgs {
			select {
			case signals <- struct{}{}:
			default:
			}
		}
	}()

	return signals, func() { _ = ps.Close() }, nil
}
