package prefstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/simplehiit-backend/internal/entity"
)

// Stored keys. Durations are kept in milliseconds.
const (
	KeyWorkPeriodLength      = "work_period_length_ms"
	KeyRestPeriodLength      = "rest_period_length_ms"
	KeyNumberOfWorkPeriods   = "number_of_work_periods"
	KeyBeepSoundActive       = "beep_sound_active"
	KeySessionStartCountdown = "session_start_countdown_ms"
	KeyPeriodStartCountdown  = "period_start_countdown_ms"
	KeySelectedExercises     = "selected_exercises"
	KeyNumberCumulatedCycles = "number_cumulated_cycles"
	KeyAppLanguage           = "app_language"
	KeyAppTheme              = "app_theme"
)

const exerciseSeparator = ","

// Decode parses a raw key/value snapshot. Missing keys stay unset and
// unknown keys are ignored; a value that does not parse is an error.
func Decode(values map[string]string) (entity.Preferences, error) {
	var p entity.Preferences
	var err error

	for key, raw := range values {
		switch key {
		case KeyWorkPeriodLength:
			p.WorkPeriodLengthMs, err = parse(key, raw, parseInt64)
		case KeyRestPeriodLength:
			p.RestPeriodLengthMs, err = parse(key, raw, parseInt64)
		case KeySessionStartCountdown:
			p.SessionStartCountdownMs, err = parse(key, raw, parseInt64)
		case KeyPeriodStartCountdown:
			p.PeriodStartCountdownMs, err = parse(key, raw, parseInt64)
		case KeyNumberOfWorkPeriods:
			p.NumberOfWorkPeriods, err = parse(key, raw, strconv.Atoi)
		case KeyNumberCumulatedCycles:
			p.NumberCumulatedCycles, err = parse(key, raw, strconv.Atoi)
		case KeyBeepSoundActive:
			p.BeepSoundActive, err = parse(key, raw, strconv.ParseBool)
		case KeySelectedExercises:
			p.SelectedExercises = decodeExercises(raw)
			p.ExercisesSet = true
		case KeyAppLanguage:
			p.Language = &raw
		case KeyAppTheme:
			p.Theme = &raw
		}
		if err != nil {
			return entity.Preferences{}, err
		}
	}

	return p, nil
}

func parse[T any](key, raw string, fn func(string) (T, error)) (*T, error) {
	v, err := fn(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: malformed value %q: %w", key, raw, err)
	}
	return &v, nil
}

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

// EncodeInt64 formats a millisecond or count value for storage.
func EncodeInt64(v int64) string { return strconv.FormatInt(v, 10) }

// EncodeBool formats a flag for storage.
func EncodeBool(v bool) string { return strconv.FormatBool(v) }

// EncodeExercises joins exercise names. An empty selection encodes to "".
func EncodeExercises(names []string) string { return strings.Join(names, exerciseSeparator) }

func decodeExercises(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, exerciseSeparator)
}
