package main

import (
	"github.com/spf13/cobra"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/mailer"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Run the users service (registration, login, token authentication)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := newProcess(config.RoleUsers)
		if err != nil {
			return err
		}

		db, err := p.openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		storages := store.NewStorages(db, p.logger)
		services, err := service.NewUsersServices(storages, mailer.New(p.cfg.Mail, p.logger), *p.cfg, p.build, p.logger)
		if err != nil {
			return err
		}

		// the users service resolves tokens itself
		return p.serve(ctx, services, services.Users)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
