// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/cache"
	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/reminder"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Run the notes service (notes, collaborators, note labels, reminders)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := newProcess(config.RoleNotes)
		if err != nil {
			return err
		}

		db, err := p.openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		rdb, err := p.openRedis(ctx)
		if err != nil {
			return err
		}
		defer rdb.Close()

		noteCache, err := cache.New(p.cfg.Storage.Cache, rdb, p.logger)
		if err != nil {
			return err
		}

		identity, err := adapter.NewUsersClient(p.cfg.Adapter, p.logger)
		if err != nil {
			return err
		}
		labels, err := adapter.NewLabelsClient(p.cfg.Adapter, p.logger)
		if err != nil {
			return err
		}

		deps := service.NotesDependencies{
			Cache:     noteCache,
			Scheduler: reminder.NewRedisQueue(rdb),
			Identity:  identity,
			Labels:    labels,
		}
		services, err := service.NewNotesServices(store.NewStorages(db, p.logger), deps, *p.cfg, p.build, p.logger)
		if err != nil {
			return err
		}

		return p.serve(ctx, services, identity)
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
}
