package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Fprintln(cmd.OutOrStdout(), build.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
