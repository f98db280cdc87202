// Package entity holds the shapes the storage collaborators read and write.
// They mirror the stored layout, not the domain model.
package entity

// User is one row of the users table.
type User struct {
	ID       int64
	Name     string
	Selected bool
}

// Session is one row of the session_records table: one participant of one workout.
type Session struct {
	ID          int64
	UserID      int64
	TimestampMs int64
	DurationMs  int64
}

// Preferences is the raw content of the preference store.
// A nil field means the key has never been written.
type Preferences struct {
	WorkPeriodLengthMs      *int64
	RestPeriodLengthMs      *int64
	NumberOfWorkPeriods     *int
	BeepSoundActive         *bool
	SessionStartCountdownMs *int64
	PeriodStartCountdownMs  *int64
	// SelectedExercises is meaningful only when ExercisesSet is true,
	// which tells an explicitly empty selection apart from an unset key.
	SelectedExercises     []string
	ExercisesSet          bool
	NumberCumulatedCycles *int
	Language              *string
	Theme                 *string
}
