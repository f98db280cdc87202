package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/simplehiit-backend/internal/app"
	"github.com/heartmarshall/simplehiit-backend/internal/domain"
)

func newSessionsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "sessions", Short: "Manage session records"}

	var (
		addDuration time.Duration
		addAt       string
		addUsers    string
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a finished session for one or more users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseSessionInput(addAt, addDuration, addUsers)
			if err != nil {
				return err
			}
			if err := check(c.validate, in); err != nil {
				return err
			}
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				record := domain.SessionRecord{Timestamp: in.Timestamp, Duration: in.Duration, UsersIDs: in.Users}
				n, err := result(s.Sessions.InsertSessionRecord(cmd.Context(), record))
				if err != nil {
					return err
				}
				c.log.Info("session recorded", slog.Int64("rows", n))
				return nil
			})
		},
	}
	addCmd.Flags().DurationVar(&addDuration, "duration", 0, "session length, e.g. 4m30s")
	addCmd.Flags().StringVar(&addAt, "at", "", "session end time, RFC3339 (default: now)")
	addCmd.Flags().StringVar(&addUsers, "users", "", "comma-separated participant ids")

	listCmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List the session records of a user, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				records, err := result(s.Sessions.GetSessionRecordsForUser(cmd.Context(), domain.User{ID: userID}))
				if err != nil {
					return err
				}
				return c.out.print(toSessionViews(records))
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete every session record of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.withStorage(cmd.Context(), func(s *app.Storage) error {
				n, err := result(s.Sessions.DeleteSessionRecordsForUser(cmd.Context(), userID))
				if err != nil {
					return err
				}
				c.log.Info("session records deleted", slog.Int64("user_id", userID), slog.Int64("rows", n))
				return nil
			})
		},
	}

	cmd.AddCommand(addCmd, listCmd, deleteCmd)
	return cmd
}

func parseSessionInput(at string, d time.Duration, users string) (sessionInput, error) {
	in := sessionInput{Timestamp: time.Now().UTC(), Duration: d}

	if at != "" {
		ts, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return in, domain.NewValidationError("at", fmt.Sprintf("%q is not an RFC3339 time", at))
		}
		in.Timestamp = ts
	}

	for _, part := range strings.Split(users, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return in, domain.NewValidationError("users", fmt.Sprintf("%q is not an id", part))
		}
		in.Users = append(in.Users, id)
	}
	return in, nil
}
