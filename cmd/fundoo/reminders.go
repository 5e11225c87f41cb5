package main

import (
	"github.com/spf13/cobra"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/mailer"
	"github.com/Rajshri-Priya/fundoo-notes/internal/reminder"
	"github.com/Rajshri-Priya/fundoo-notes/internal/workers"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Run the reminder worker that mails due note reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := newProcess(config.RoleReminders)
		if err != nil {
			return err
		}

		rdb, err := p.openRedis(ctx)
		if err != nil {
			return err
		}
		defer rdb.Close()

		dispatcher := reminder.NewDispatcher(reminder.NewRedisQueue(rdb), mailer.New(p.cfg.Mail, p.logger), p.cfg.Workers, p.logger)

		p.logger.Info().Dur("poll_interval", p.cfg.Workers.ReminderPollInterval).Msg("reminder worker started")
		err = workers.New(dispatcher).Run(ctx)
		p.logger.Info().Msg("reminder worker stopped")
		return err
	},
}

func init() {
	rootCmd.AddCommand(remindersCmd)
}
