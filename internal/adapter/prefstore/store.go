// Package prefstore implements the key-value preference store on top of a
// pluggable backend (redis or in-process memory).
package prefstore

import (
	"context"
	"fmt"

	"github.com/heartmarshall/simplehiit-backend/internal/entity"
	"github.com/heartmarshall/simplehiit-backend/pkg/stream"
)

// Backend is the raw key-value storage behind a Store. Every write and every
// clear must signal subscribers of Changes.
type Backend interface {
	Put(ctx context.Context, key, value string) error
	Snapshot(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
	// Changes subscribes to change signals. The returned func unsubscribes.
	Changes(ctx context.Context) (<-chan struct{}, func(), error)
}

// Store is the preference store used by the settings repository.
type Store struct {
	backend Backend
}

// New creates a Store over backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads and decodes the current content once.
func (s *Store) Load(ctx context.Context) (entity.Preferences, error) {
	values, err := s.backend.Snapshot(ctx)
	if err != nil {
		return entity.Preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	return Decode(values)
}

// Ping reads the store once and reports whether it answered.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.backend.Snapshot(ctx); err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}
	return nil
}

// Watch emits the current content on subscribe and again after every change.
// A failed read is emitted as an error item and watching goes on. The stream
// ends when ctx is done or the change subscription is lost.
func (s *Store) Watch(ctx context.Context) <-chan stream.Item[entity.Preferences] {
	out := make(chan stream.Item[entity.Preferences])

	go func() {
		defer close(out)

		changes, unsubscribe, err := s.backend.Changes(ctx)
		if err != nil {
			stream.Send(ctx, out, stream.Failed[entity.Preferences](fmt.Errorf("subscribe to preference changes: %w", err)))
			return
		}
		defer unsubscribe()

		for {
			p, err := s.Load(ctx)
			item := stream.Of(p)
			if err != nil {
				item = stream.Failed[entity.Preferences](err)
			}
			if !stream.Send(ctx, out, item) {
				return
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
			}
		}
	}()

	return out
}

// SetWorkPeriodLength stores the work period length in milliseconds.
func (s *Store) SetWorkPeriodLength(ctx context.Context, ms int64) error {
	return s.put(ctx, KeyWorkPeriodLength, EncodeInt64(ms))
}

// SetRestPeriodLength stores the rest period length in milliseconds.
func (s *Store) SetRestPeriodLength(ctx context.Context, ms int64) error {
	return s.put(ctx, KeyRestPeriodLength, EncodeInt64(ms))
}

// SetNumberOfWorkPeriods stores how many work periods a cycle has.
func (s *Store) SetNumberOfWorkPeriods(ctx context.Context, n int) error {
	return s.put(ctx, KeyNumberOfWorkPeriods, EncodeInt64(int64(n)))
}

// SetBeepSound stores whether period changes beep.
func (s *Store) SetBeepSound(ctx context.Context, active bool) error {
	return s.put(ctx, KeyBeepSoundActive, EncodeBool(active))
}

// SetSessionStartCountdown stores the countdown before a session, in milliseconds.
func (s *Store) SetSessionStartCountdown(ctx context.Context, ms int64) error {
	return s.put(ctx, KeySessionStartCountdown, EncodeInt64(ms))
}

// SetPeriodStartCountdown stores the countdown before each period, in milliseconds.
func (s *Store) SetPeriodStartCountdown(ctx context.Context, ms int64) error {
	return s.put(ctx, KeyPeriodStartCountdown, EncodeInt64(ms))
}

// SetNumberCumulatedCycles stores how many cycles a session repeats.
func (s *Store) SetNumberCumulatedCycles(ctx context.Context, n int) error {
	return s.put(ctx, KeyNumberCumulatedCycles, EncodeInt64(int64(n)))
}

// SetSelectedExercises stores the names of the selected exercises.
func (s *Store) SetSelectedExercises(ctx context.Context, names []string) error {
	return s.put(ctx, KeySelectedExercises, EncodeExercises(names))
}

// SetLanguage stores the display language as given.
func (s *Store) SetLanguage(ctx context.Context, language string) error {
	return s.put(ctx, KeyAppLanguage, language)
}

// SetTheme stores the colour theme as given.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.put(ctx, KeyAppTheme, theme)
}

// Clear removes every stored key.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	if err := s.backend.Put(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
