package main

import (
	"github.com/spf13/cobra"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := newProcess(config.RoleMigrate)
		if err != nil {
			return err
		}

		db, err := store.NewConnect(ctx, p.cfg.Storage.DB, p.logger)
		if err != nil {
			return err
		}
		defer db.Close()

		if err = db.Migrate(ctx); err != nil {
			return err
		}

		p.logger.Info().Msg("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
