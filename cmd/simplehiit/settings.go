package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/simplehiit-backend/internal/app"
	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/observability"
	"github.com/heartmarshall/simplehiit-backend/internal/repository/settings"
)

type settingSetter func(ctx context.Context, r *settings.Repo, value string) error

// settingFields maps the `settings set` field names to their setter.
var settingFields = map[string]settingSetter{
	"work-period":       durationSetter("work-period", (*settings.Repo).SetWorkPeriodLength),
	"rest-period":       durationSetter("rest-period", (*settings.Repo).SetRestPeriodLength),
	"work-periods":      intSetter("work-periods", (*settings.Repo).SetNumberOfWorkPeriods),
	"cycles":            intSetter("cycles", (*settings.Repo).SetTotalRepetitionsNumber),
	"session-countdown": durationSetter("session-countdown", (*settings.Repo).SetSessionStartCountdown),
	"period-countdown":  durationSetter("period-countdown", (*settings.Repo).SetPeriodStartCountdown),
	"beep": func(ctx context.Context, r *settings.Repo, value string) error {
		on, err := strconv.ParseBool(value)
		if err != nil {
			return domain.NewValidationError("beep", fmt.Sprintf("%q is not a boolean", value))
		}
		return r.SetBeepSound(ctx, on)
	},
	"exercises": func(ctx context.Context, r *settings.Repo, value string) error {
		selection, err := parseExercises(value)
		if err != nil {
			return err
		}
		return r.SetExercisesTypesSelected(ctx, selection)
	},
	"theme": func(ctx context.Context, r *settings.Repo, value string) error {
		return r.SetAppTheme(ctx, domain.AppTheme(strings.ToUpper(value)))
	},
}

func settingNames() []string {
	names := make([]string, 0, len(settingFields))
	for name := range settingFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func durationSetter(field string, set func(*settings.Repo, context.Context, time.Duration) error) settingSetter {
	return func(ctx context.Context, r *settings.Repo, value string) error {
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return domain.NewValidationError(field, fmt.Sprintf("%q is not a non-negative duration", value))
		}
		return set(r, ctx, d)
	}
}

func intSetter(field string, set func(*settings.Repo, context.Context, int) error) settingSetter {
	return func(ctx context.Context, r *settings.Repo, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return domain.NewValidationError(field, fmt.Sprintf("%q is not a positive integer", value))
		}
		return set(r, ctx, n)
	}
}

// parseExercises builds the full catalogue with the named exercises selected.
// "none" selects nothing.
func parseExercises(value string) ([]domain.ExerciseTypeSelected, error) {
	named := make(map[domain.ExerciseType]bool)
	if !strings.EqualFold(value, "none") {
		for _, part := range strings.Split(value, ",") {
			t := domain.ExerciseType(strings.ToUpper(strings.TrimSpace(part)))
			if !t.IsValid() {
				return nil, domain.NewValidationError("exercises", fmt.Sprintf("unknown exercise %q", part))
			}
			named[t] = true
		}
	}

	types := domain.ExerciseTypes()
	selection := make([]domain.ExerciseTypeSelected, len(types))
	for i, t := range types {
		selection[i] = domain.ExerciseTypeSelected{Type: t, Selected: named[t]}
	}
	return selection, nil
}

func newSettingsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "settings", Short: "Read and change workout settings"}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSettings(cmd.Context(), func(ctx context.Context, r *settings.Repo) error {
				ctx, cancel := context.WithCancel(ctx)
				defer cancel()

				prefs, ok := <-r.GetPreferences(ctx)
				if !ok {
					return ctx.Err()
				}
				return c.out.print(toPreferencesView(prefs))
			})
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the settings every time they change, until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := app.OpenSettings(ctx, c.cfg.Preferences, c.log)
			if err != nil {
				return err
			}
			defer s.Close()

			c.serveMetrics(ctx, map[string]observability.Pinger{"preferences": s})
			for prefs := range s.Repo.GetPreferences(ctx) {
				if err := c.out.print(toPreferencesView(prefs)); err != nil {
					return err
				}
			}
			return ctx.Err()
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change one setting",
		Long:  "Change one setting. Fields: " + strings.Join(settingNames(), ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := settingInput{Field: args[0], Value: args[1]}
			if err := check(c.validate, in); err != nil {
				return err
			}
			return c.withSettings(cmd.Context(), func(ctx context.Context, r *settings.Repo) error {
				if err := settingFields[in.Field](ctx, r, in.Value); err != nil {
					return err
				}
				c.log.Info("setting changed", slog.String("field", in.Field), slog.String("value", in.Value))
				return nil
			})
		},
	}

	languageCmd := &cobra.Command{
		Use:   "language <language>",
		Short: "Change the display language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSettings(cmd.Context(), func(ctx context.Context, r *settings.Repo) error {
				lang, err := result(r.SetAppLanguage(ctx, domain.AppLanguage(strings.ToUpper(args[0]))))
				if err != nil {
					return err
				}
				return c.out.print(lang.String())
			})
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore every setting to its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSettings(cmd.Context(), func(ctx context.Context, r *settings.Repo) error {
				return r.ResetAllSettings(ctx)
			})
		},
	}

	cmd.AddCommand(showCmd, watchCmd, setCmd, languageCmd, resetCmd)
	return cmd
}

// withSettings opens the configured preference store for the duration of fn.
func (c *cli) withSettings(ctx context.Context, fn func(ctx context.Context, r *settings.Repo) error) error {
	s, err := app.OpenSettings(ctx, c.cfg.Preferences, c.log)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(ctx, s.Repo)
}
