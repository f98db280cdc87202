package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/simplehiit-backend/internal/adapter/postgres"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.Migrate(cmd.Context(), c.log, c.cfg.Database.DSN)
		},
	}
}
