// Package settings implements the settings repository over the key-value preference store.
package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
	"github.com/heartmarshall/simplehiit-backend/internal/mapper"
	"github.com/heartmarshall/simplehiit-backend/internal/observability"
	"github.com/heartmarshall/simplehiit-backend/internal/repository"
	"github.com/heartmarshall/simplehiit-backend/pkg/stream"
)

// preferenceStore is the key-value collaborator. Durations are stored in milliseconds.
type preferenceStore interface {
	Watch(ctx context.Context) <-chan stream.Item[entity.Preferences]
	SetWorkPeriodLength(ctx context.Context, ms int64) error
	SetRestPeriodLength(ctx context.Context, ms int64) error
	SetNumberOfWorkPeriods(ctx context.Context, n int) error
	SetBeepSound(ctx context.Context, active bool) error
	SetSessionStartCountdown(ctx context.Context, ms int64) error
	SetPeriodStartCountdown(ctx context.Context, ms int64) error
	SetNumberCumulatedCycles(ctx context.Context, n int) error
	SetSelectedExercises(ctx context.Context, names []string) error
	SetLanguage(ctx context.Context, language string) error
	SetTheme(ctx context.Context, theme string) error
	Clear(ctx context.Context) error
}

const tagGetPreferences = "SettingsRepository.getPreferences"

var opSetAppLanguage = repository.Op{
	Tag:     "SettingsRepository.setAppLanguage",
	Code:    domain.ErrLanguageSetFailed,
	Message: "failed setting language",
}

// Repo is the settings repository.
type Repo struct {
	log   *slog.Logger
	store preferenceStore
}

// New creates a settings repository on top of store.
func New(logger *slog.Logger, store preferenceStore) *Repo {
	return &Repo{
		log:   logger.With("repository", "settings"),
		store: store,
	}
}

// GetPreferences streams the current settings snapshot. It never emits an
// error: an upstream failure is logged and replaced by one default snapshot,
// and the subscription stays open for the next upstream value.
// The stream ends when upstream closes, ctx is done, or upstream reports a cancellation.
func (r *Repo) GetPreferences(ctx context.Context) <-chan domain.SimpleHiitPreferences {
	upstream := r.store.Watch(ctx)
	out := make(chan domain.SimpleHiitPreferences)

	go func() {
		defer close(out)
		for {
			var item stream.Item[entity.Preferences]
			var ok bool
			select {
			case <-ctx.Done():
				return
			case item, ok = <-upstream:
				if !ok {
					return
				}
			}

			var prefs domain.SimpleHiitPreferences
			switch {
			case item.Err == nil:
				prefs = mapper.PreferencesToDomain(item.Value)
			case repository.IsCancellation(item.Err):
				repository.Cancelled(ctx, r.log, tagGetPreferences)
				return
			default:
				r.log.ErrorContext(ctx, "failed reading preferences, using defaults",
					slog.String("tag", tagGetPreferences),
					slog.String("error", item.Err.Error()))
				observability.RecordPreferencesFallback()
				prefs = domain.DefaultPreferences()
			}

			if !stream.Send(ctx, out, prefs) {
				return
			}
		}
	}()

	return out
}

// SetWorkPeriodLength stores the length of one work period.
func (r *Repo) SetWorkPeriodLength(ctx context.Context, d time.Duration) error {
	return r.store.SetWorkPeriodLength(ctx, d.Milliseconds())
}

// SetRestPeriodLength stores the length of one rest period.
func (r *Repo) SetRestPeriodLength(ctx context.Context, d time.Duration) error {
	return r.store.SetRestPeriodLength(ctx, d.Milliseconds())
}

// SetNumberOfWorkPeriods stores how many work periods make one cycle.
func (r *Repo) SetNumberOfWorkPeriods(ctx context.Context, n int) error {
	return r.store.SetNumberOfWorkPeriods(ctx, n)
}

// SetBeepSound toggles the period-change beep.
func (r *Repo) SetBeepSound(ctx context.Context, active bool) error {
	return r.store.SetBeepSound(ctx, active)
}

// SetSessionStartCountdown stores the countdown played before the first period.
func (r *Repo) SetSessionStartCountdown(ctx context.Context, d time.Duration) error {
	return r.store.SetSessionStartCountdown(ctx, d.Milliseconds())
}

// SetPeriodStartCountdown stores the countdown played before every period.
func (r *Repo) SetPeriodStartCountdown(ctx context.Context, d time.Duration) error {
	return r.store.SetPeriodStartCountdown(ctx, d.Milliseconds())
}

// SetTotalRepetitionsNumber stores how many cycles a session chains.
func (r *Repo) SetTotalRepetitionsNumber(ctx context.Context, n int) error {
	return r.store.SetNumberCumulatedCycles(ctx, n)
}

// SetExercisesTypesSelected stores which exercises are part of the workout.
// Unselected and unknown entries are not stored.
func (r *Repo) SetExercisesTypesSelected(ctx context.Context, exercises []domain.ExerciseTypeSelected) error {
	return r.store.SetSelectedExercises(ctx, mapper.ExercisesToEntity(exercises))
}

// SetAppTheme stores the colour scheme.
func (r *Repo) SetAppTheme(ctx context.Context, theme domain.AppTheme) error {
	if !theme.IsValid() {
		return domain.NewValidationError("theme", "unknown theme "+theme.String())
	}
	return r.store.SetTheme(ctx, theme.String())
}

// SetAppLanguage stores the display language. Unlike the other setters its
// failures come back as a LANGUAGE_SET_FAILED Output.
func (r *Repo) SetAppLanguage(ctx context.Context, language domain.AppLanguage) (domain.Output[domain.AppLanguage], error) {
	if !language.IsValid() {
		return repository.Reject[domain.AppLanguage](ctx, r.log, opSetAppLanguage,
			domain.NewValidationError("language", "unknown language "+language.String())), nil
	}
	return repository.Run(ctx, r.log, opSetAppLanguage, func(ctx context.Context) (domain.AppLanguage, error) {
		if err := r.store.SetLanguage(ctx, language.String()); err != nil {
			return "", err
		}
		return language, nil
	})
}

// ResetAllSettings clears the store; the next snapshot is the default one.
func (r *Repo) ResetAllSettings(ctx context.Context) error {
	return r.store.Clear(ctx)
}
