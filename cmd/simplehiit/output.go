package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case formatText, formatJSON, formatYAML:
		return &printer{w: w, format: format}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// print writes v in the selected format. Text output relies on fmt.Stringer
// or, for slices of views, one line per element.
func (p *printer) print(v any) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	switch t := v.(type) {
	case []userView:
		for _, u := range t {
			fmt.Fprintln(p.w, u)
		}
	case []sessionView:
		for _, s := range t {
			fmt.Fprintln(p.w, s)
		}
	default:
		fmt.Fprintln(p.w, v)
	}
	return nil
}

// result unwraps a repository call: a cancellation comes back as is, an
// error Output becomes its *domain.OutputError.
func result[T any](out domain.Output[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return out.Unwrap()
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

type userView struct {
	ID       int64  `json:"id"       yaml:"id"`
	Name     string `json:"name"     yaml:"name"`
	Selected bool   `json:"selected" yaml:"selected"`
}

func (u userView) String() string {
	mark := " "
	if u.Selected {
		mark = "*"
	}
	return fmt.Sprintf("%s %4d  %s", mark, u.ID, u.Name)
}

func toUserViews(users []domain.User) []userView {
	views := make([]userView, len(users))
	for i, u := range users {
		views[i] = userView{ID: u.ID, Name: u.Name, Selected: u.Selected}
	}
	return views
}

type sessionView struct {
	ID        int64     `json:"id"         yaml:"id"`
	Timestamp time.Time `json:"timestamp"  yaml:"timestamp"`
	Duration  string    `json:"duration"   yaml:"duration"`
	UsersIDs  []int64   `json:"users_ids"  yaml:"users_ids"`
}

func (s sessionView) String() string {
	return fmt.Sprintf("%4d  %s  %8s  users=%v", s.ID, s.Timestamp.Format(time.RFC3339), s.Duration, s.UsersIDs)
}

func toSessionViews(records []domain.SessionRecord) []sessionView {
	views := make([]sessionView, len(records))
	for i, r := range records {
		views[i] = sessionView{ID: r.ID, Timestamp: r.Timestamp, Duration: r.Duration.String(), UsersIDs: r.UsersIDs}
	}
	return views
}

type preferencesView struct {
	WorkPeriodLength      string   `json:"work_period_length"      yaml:"work_period_length"`
	RestPeriodLength      string   `json:"rest_period_length"      yaml:"rest_period_length"`
	NumberOfWorkPeriods   int      `json:"number_of_work_periods"  yaml:"number_of_work_periods"`
	BeepSoundActive       bool     `json:"beep_sound_active"       yaml:"beep_sound_active"`
	SessionStartCountdown string   `json:"session_start_countdown" yaml:"session_start_countdown"`
	PeriodStartCountdown  string   `json:"period_start_countdown"  yaml:"period_start_countdown"`
	SelectedExercises     []string `json:"selected_exercises"      yaml:"selected_exercises"`
	NumberCumulatedCycles int      `json:"number_cumulated_cycles" yaml:"number_cumulated_cycles"`
	CycleLength           string   `json:"cycle_length"            yaml:"cycle_length"`
	Language              string   `json:"language"                yaml:"language"`
	Theme                 string   `json:"theme"                   yaml:"theme"`
}

func toPreferencesView(p domain.SimpleHiitPreferences) preferencesView {
	selected := make([]string, 0, len(p.SelectedExercisesTypes))
	for _, e := range p.SelectedExercises() {
		selected = append(selected, e.String())
	}
	return preferencesView{
		WorkPeriodLength:      p.WorkPeriodLength.String(),
		RestPeriodLength:      p.RestPeriodLength.String(),
		NumberOfWorkPeriods:   p.NumberOfWorkPeriods,
		BeepSoundActive:       p.BeepSoundActive,
		SessionStartCountdown: p.SessionStartCountdown.String(),
		PeriodStartCountdown:  p.PeriodStartCountdown.String(),
		SelectedExercises:     selected,
		NumberCumulatedCycles: p.NumberCumulatedCycles,
		CycleLength:           p.CycleLength().String(),
		Language:              p.Language.String(),
		Theme:                 p.Theme.String(),
	}
}

func (v preferencesView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "work period:       %s\n", v.WorkPeriodLength)
	fmt.Fprintf(&b, "rest period:       %s\n", v.RestPeriodLength)
	fmt.Fprintf(&b, "work periods:      %d\n", v.NumberOfWorkPeriods)
	fmt.Fprintf(&b, "cycles:            %d (%s each)\n", v.NumberCumulatedCycles, v.CycleLength)
	fmt.Fprintf(&b, "beep:              %t\n", v.BeepSoundActive)
	fmt.Fprintf(&b, "session countdown: %s\n", v.SessionStartCountdown)
	fmt.Fprintf(&b, "period countdown:  %s\n", v.PeriodStartCountdown)
	fmt.Fprintf(&b, "exercises:         %s\n", strings.Join(v.SelectedExercises, ", "))
	fmt.Fprintf(&b, "language:          %s\n", v.Language)
	fmt.Fprintf(&b, "theme:             %s", v.Theme)
	return b.String()
}
