package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/simplehiit-backend/internal/app"
	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/observability"
)

func newUsersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage users"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users (* marks the ones selected for the next session)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				users, err := result(s.Users.GetUsersList(cmd.Context()))
				if err != nil {
					return err
				}
				return c.out.print(toUserViews(users))
			})
		},
	}

	var addSelected bool
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := userInput{Name: args[0], Selected: addSelected}
			if err := check(c.validate, in); err != nil {
				return err
			}
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				id, err := result(s.Users.InsertUser(cmd.Context(), domain.User{Name: in.Name, Selected: in.Selected}))
				if err != nil {
					return err
				}
				return c.out.print(userView{ID: id, Name: in.Name, Selected: in.Selected})
			})
		},
	}
	addCmd.Flags().BoolVar(&addSelected, "selected", false, "select the user for the next session")

	var updateSelected bool
	updateCmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a user and set its selection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in := userInput{ID: id, Name: args[1], Selected: updateSelected}
			if err := check(c.validate, in); err != nil {
				return err
			}
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				u := domain.User{ID: in.ID, Name: in.Name, Selected: in.Selected}
				if _, err := result(s.Users.UpdateUser(cmd.Context(), u)); err != nil {
					return err
				}
				return c.out.print(userView{ID: u.ID, Name: u.Name, Selected: u.Selected})
			})
		},
	}
	updateCmd.Flags().BoolVar(&updateSelected, "selected", false, "select the user for the next session")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user and its session records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				_, err := result(s.Users.DeleteUser(cmd.Context(), domain.User{ID: id}))
				return err
			})
		},
	}

	var purgeYes bool
	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every user and every session record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !purgeYes {
				return fmt.Errorf("refusing to delete every user without --yes")
			}
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				if err := s.Users.DeleteAllUsers(cmd.Context()); err != nil {
					return err
				}
				c.log.Info("all users deleted")
				return nil
			})
		},
	}
	purgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "confirm the purge")

	var watchSelected bool
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the user list every time it changes, until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withStorage(ctx, func(s *app.Storage) error {
				c.serveMetrics(ctx, map[string]observability.Pinger{"database": s.Pool})
				for out := range watchUsers(ctx, s.Users, watchSelected) {
					users, err := out.Unwrap()
					if err != nil {
						c.log.Warn("user list unavailable", slog.String("code", out.Code().String()))
						continue
					}
					if err := c.out.print(toUserViews(users)); err != nil {
						return err
					}
				}
				return ctx.Err()
			})
		},
	}
	watchCmd.Flags().BoolVar(&watchSelected, "selected", false, "watch only the selected users")

	cmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd, purgeCmd, watchCmd)
	return cmd
}

// userWatcher is the part of the users repository the watch command reads.
type userWatcher interface {
	GetUsers(ctx context.Context) <-chan domain.Output[[]domain.User]
	GetSelectedUsers(ctx context.Context) <-chan domain.Output[[]domain.User]
}

// watchUsers opens exactly one live list: the selected users or all of them.
func watchUsers(ctx context.Context, r userWatcher, selected bool) <-chan domain.Output[[]domain.User] {
	if selected {
		return r.GetSelectedUsers(ctx)
	}
	return r.GetUsers(ctx)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", fmt.Sprintf("%q is not a positive integer", s))
	}
	return id, nil
}

// serveMetrics exposes /metrics and /health for the lifetime of a long-running
// command when enabled.
func (c *cli) serveMetrics(ctx context.Context, components map[string]observability.Pinger) {
	if c.cfg.Metrics.Enabled {
		health := observability.NewHealthHandler(components, app.BuildVersion())
		observability.Serve(ctx, c.log, c.cfg.Metrics.Addr, health)
	}
}
