package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ideagen/ideagen-backend/internal/logging"
	"github.com/ideagen/ideagen-backend/internal/prompts"
)

func newBrainstormCmd() *cobra.Command {
	var roles, technologies, industries []string

	cmd := &cobra.Command{
		Use:   "brainstorm",
		Short: "Print the project idea prompt for a set of roles, technologies and an industry",
		Example: `  ideagen brainstorm --role Developer --role "Data Scientist" \
    --tech Go --tech PostgreSQL --industry Healthcare`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := prompts.BuildBrainstormPrompt(roles, technologies, industries)
			if err != nil {
				return err
			}
			logging.NewLogger(cmd.Context()).LogDebugf("brainstorm_prompt", "roles=%d technologies=%d industries=%d prompt_len=%d",
				len(roles), len(technologies), len(industries), len(prompt))
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&roles, "role", nil, "job role (repeatable)")
	cmd.Flags().StringArrayVar(&technologies, "tech", nil, "technology (repeatable)")
	cmd.Flags().StringArrayVar(&industries, "industry", nil, "industry; only the first is used")
	return cmd
}

func newTasksCmd() *cobra.Command {
	var (
		title, summary string
		languages      []string
		steps          []string
		ideaPath       string
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Print the task generation prompt for a project",
		Long:  "Builds the task generation prompt either from flags or from a project idea JSON reply (--idea).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				prompt string
				err    error
			)
			if ideaPath != "" {
				data, readErr := os.ReadFile(ideaPath)
				if readErr != nil {
					return fmt.Errorf("read idea: %w", readErr)
				}
				idea, parseErr := prompts.ParseProjectIdea(data)
				if parseErr != nil {
					return parseErr
				}
				prompt, err = idea.TaskgenPrompt()
			} else {
				prompt, err = prompts.BuildTaskgenPrompt(title, summary, languages, steps)
			}
			if err != nil {
				return err
			}
			logging.NewLogger(cmd.Context()).LogDebugf("taskgen_prompt", "from_idea=%t prompt_len=%d", ideaPath != "", len(prompt))
			fmt.Fprint(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&summary, "summary", "", "project summary")
	cmd.Flags().StringArrayVar(&languages, "lang", nil, "language or technology (repeatable)")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "project step, in order (repeatable)")
	cmd.Flags().StringVar(&ideaPath, "idea", "", "path to a project idea JSON file")
	cmd.MarkFlagsMutuallyExclusive("idea", "title")
	cmd.MarkFlagsMutuallyExclusive("idea", "summary")
	cmd.MarkFlagsMutuallyExclusive("idea", "lang")
	cmd.MarkFlagsMutuallyExclusive("idea", "step")
	return cmd
}
