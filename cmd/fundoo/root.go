package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
)

var (
	flags       *config.Flags
	autoMigrate bool
)

var rootCmd = &cobra.Command{
	Use:   "fundoo",
	Short: "FundooNotes services: users, notes, labels and the reminder worker",
	Long: `fundoo runs one process of the FundooNotes backend per invocation.
Configuration comes from the environment (and a local .env file), the flags
below and an optional JSON or YAML file, in that order.`,
	SilenceUsage: true,
}

// Execute runs the command selected on the command line. SIGINT and SIGTERM
// cancel the context handed to every command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags = config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply database migrations before serving")
}
