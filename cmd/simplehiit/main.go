// Command simplehiit is the maintenance CLI for SimpleHIIT storage: schema
// migrations, users, session records and settings, all through the repositories.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml) plus environment
// variables; an optional .env file is loaded first.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/simplehiit-backend/internal/app"
	"github.com/heartmarshall/simplehiit-backend/internal/config"
	"github.com/heartmarshall/simplehiit-backend/pkg/ctxutil"
)

// cli carries what every subcommand needs once the root pre-run has loaded it.
type cli struct {
	envFile string
	format  string

	cfg      *config.Config
	log      *slog.Logger
	out      *printer
	validate *validator.Validate
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{validate: newValidator()}

	root := &cobra.Command{
		Use:           "simplehiit",
		Short:         "Maintenance CLI for SimpleHIIT users, sessions and settings",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before the configuration (ignored when missing)")
	root.PersistentFlags().StringVarP(&c.format, "output", "o", formatText, "output format: text|json|yaml")

	root.AddCommand(
		newMigrateCmd(c),
		newUsersCmd(c),
		newSessionsCmd(c),
		newSettingsCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	out, err := newPrinter(cmd.OutOrStdout(), c.format)
	if err != nil {
		return err
	}
	c.out = out

	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", c.envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg

	ctx, runID := ctxutil.NewRunID(cmd.Context())
	cmd.SetContext(ctx)

	c.log = app.NewLogger(cfg.Log).With(slog.String("run_id", runID.String()))
	c.log.Debug("starting", slog.String("command", cmd.CommandPath()), slog.String("version", app.BuildVersion()))
	return nil
}

// withStorage opens PostgreSQL for the duration of fn.
func (c *cli) withStorage(ctx context.Context, fn func(s *app.Storage) error) error {
	s, err := app.OpenStorage(ctx, c.cfg.Database, c.log)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
