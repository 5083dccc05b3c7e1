package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideagen/ideagen-backend/config"
	"github.com/ideagen/ideagen-backend/internal/logging"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var requestID string

	root := &cobra.Command{
		Use:          "ideagen",
		Short:        "Project idea prompt and account helpers",
		Long:         "ideagen builds the prompts sent to the idea generation service and exercises the account helpers (passwords, confirmation tokens, email).",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv()
			ctx := logging.WithRequestID(cmd.Context(), requestID)
			ctx = logging.WithLevel(ctx, config.FromEnv().App.LogLevel)
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().StringVar(&requestID, "request-id", "", "request id to tag log lines with (default: random uuid)")

	root.AddCommand(
		newBrainstormCmd(),
		newTasksCmd(),
		newTokenCmd(),
		newPasswordCmd(),
		newMailCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ideagen %s\n", version)
		},
	}
}
