package main

import (
	"github.com/spf13/cobra"

	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Run the labels service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := newProcess(config.RoleLabels)
		if err != nil {
			return err
		}

		db, err := p.openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		identity, err := adapter.NewUsersClient(p.cfg.Adapter, p.logger)
		if err != nil {
			return err
		}

		services, err := service.NewLabelsServices(store.NewStorages(db, p.logger), *p.cfg, p.build, p.logger)
		if err != nil {
			return err
		}

		return p.serve(ctx, services, identity)
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}
