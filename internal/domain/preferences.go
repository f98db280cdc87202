package domain

import "time"

// ExerciseTypeSelected pairs a catalogue exercise with whether it is part of the workout.
type ExerciseTypeSelected struct {
	Type     ExerciseType
	Selected bool
}

// SimpleHiitPreferences is one complete snapshot of the workout settings.
type SimpleHiitPreferences struct {
	WorkPeriodLength       time.Duration
	RestPeriodLength       time.Duration
	NumberOfWorkPeriods    int
	BeepSoundActive        bool
	SessionStartCountdown  time.Duration
	PeriodStartCountdown   time.Duration
	SelectedExercisesTypes []ExerciseTypeSelected
	NumberCumulatedCycles  int
	Language               AppLanguage
	Theme                  AppTheme
}

// Default settings values.
const (
	DefaultWorkPeriodLength      = 20 * time.Second
	DefaultRestPeriodLength      = 10 * time.Second
	DefaultNumberOfWorkPeriods   = 8
	DefaultBeepSoundActive       = true
	DefaultSessionStartCountdown = 20 * time.Second
	DefaultPeriodStartCountdown  = 5 * time.Second
	DefaultNumberCumulatedCycles = 1
	DefaultLanguage              = LanguageSystemDefault
	DefaultTheme                 = ThemeFollowSystem
)

// DefaultPreferences returns the snapshot used when nothing is stored or the store cannot be read.
func DefaultPreferences() SimpleHiitPreferences {
	return SimpleHiitPreferences{
		WorkPeriodLength:       DefaultWorkPeriodLength,
		RestPeriodLength:       DefaultRestPeriodLength,
		NumberOfWorkPeriods:    DefaultNumberOfWorkPeriods,
		BeepSoundActive:        DefaultBeepSoundActive,
		SessionStartCountdown:  DefaultSessionStartCountdown,
		PeriodStartCountdown:   DefaultPeriodStartCountdown,
		SelectedExercisesTypes: AllExercisesSelected(),
		NumberCumulatedCycles:  DefaultNumberCumulatedCycles,
		Language:               DefaultLanguage,
		Theme:                  DefaultTheme,
	}
}

// AllExercisesSelected returns the whole catalogue, every exercise selected.
func AllExercisesSelected() []ExerciseTypeSelected {
	types := ExerciseTypes()
	out := make([]ExerciseTypeSelected, len(types))
	for i, t := range types {
		out[i] = ExerciseTypeSelected{Type: t, Selected: true}
	}
	return out
}

// SelectedExercises returns the selected exercise types in catalogue order.
func (p SimpleHiitPreferences) SelectedExercises() []ExerciseType {
	var out []ExerciseType
	for _, e := range p.SelectedExercisesTypes {
		if e.Selected {
			out = append(out, e.Type)
		}
	}
	return out
}

// CycleLength is the duration of one cycle of work and rest periods.
func (p SimpleHiitPreferences) CycleLength() time.Duration {
	return time.Duration(p.NumberOfWorkPeriods) * (p.WorkPeriodLength + p.RestPeriodLength)
}
