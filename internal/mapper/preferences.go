package mapper

import (
	"math"
	"time"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
)

// PreferencesToDomain resolves the raw store content into a complete snapshot.
// Unset keys, unknown enum values and out-of-range numbers fall back to the defaults.
func PreferencesToDomain(e entity.Preferences) domain.SimpleHiitPreferences {
	p := domain.DefaultPreferences()

	if e.WorkPeriodLengthMs != nil && *e.WorkPeriodLengthMs > 0 {
		p.WorkPeriodLength = msToDuration(*e.WorkPeriodLengthMs, p.WorkPeriodLength)
	}
	if e.RestPeriodLengthMs != nil {
		p.RestPeriodLength = msToDuration(*e.RestPeriodLengthMs, p.RestPeriodLength)
	}
	if e.NumberOfWorkPeriods != nil && *e.NumberOfWorkPeriods >= 1 {
		p.NumberOfWorkPeriods = *e.NumberOfWorkPeriods
	}
	if e.BeepSoundActive != nil {
		p.BeepSoundActive = *e.BeepSoundActive
	}
	if e.SessionStartCountdownMs != nil {
		p.SessionStartCountdown = msToDuration(*e.SessionStartCountdownMs, p.SessionStartCountdown)
	}
	if e.PeriodStartCountdownMs != nil {
		p.PeriodStartCountdown = msToDuration(*e.PeriodStartCountdownMs, p.PeriodStartCountdown)
	}
	if e.ExercisesSet {
		p.SelectedExercisesTypes = ExercisesToDomain(e.SelectedExercises)
	}
	if e.NumberCumulatedCycles != nil && *e.NumberCumulatedCycles >= 1 {
		p.NumberCumulatedCycles = *e.NumberCumulatedCycles
	}
	if e.Language != nil {
		if lang := domain.AppLanguage(*e.Language); lang.IsValid() {
			p.Language = lang
		}
	}
	if e.Theme != nil {
		if theme := domain.AppTheme(*e.Theme); theme.IsValid() {
			p.Theme = theme
		}
	}

	return p
}

// ExercisesToDomain expands the stored selection into the whole catalogue in canonical order.
// Names outside the catalogue are ignored.
func ExercisesToDomain(selected []string) []domain.ExerciseTypeSelected {
	set := make(map[domain.ExerciseType]bool, len(selected))
	for _, name := range selected {
		set[domain.ExerciseType(name)] = true
	}

	types := domain.ExerciseTypes()
	out := make([]domain.ExerciseTypeSelected, len(types))
	for i, t := range types {
		out[i] = domain.ExerciseTypeSelected{Type: t, Selected: set[t]}
	}
	return out
}

// ExercisesToEntity keeps the names of the selected, known exercises, in input order.
func ExercisesToEntity(list []domain.ExerciseTypeSelected) []string {
	names := make([]string, 0, len(list))
	seen := make(map[domain.ExerciseType]bool, len(list))
	for _, e := range list {
		if !e.Selected || !e.Type.IsValid() || seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		names = append(names, e.Type.String())
	}
	return names
}

// maxDurationMs is the largest millisecond count a time.Duration can hold.
const maxDurationMs = math.MaxInt64 / int64(time.Millisecond)

// msToDuration converts ms, or returns def when ms is negative or overflows a Duration.
func msToDuration(ms int64, def time.Duration) time.Duration {
	if ms < 0 || ms > maxDurationMs {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
