package main

import (
	"fmt"

	"github.com/hackdeck/hackdeck/cmd"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/migrate"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:                "migrate",
	Short:              "Run database migrations",
	Args:               cobra.NoArgs,
	PersistentPreRunE:  cmd.InitBackendContext,
	PersistentPostRunE: cmd.CloseDBContext,
	RunE: func(c *cobra.Command, _ []string) error {
		ctx := c.Context()
		if err := migrate.Migrate(ctx, db.FromContext(ctx)); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
		return nil
	},
}
