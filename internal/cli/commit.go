package cli

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/actions"
	"gitpro.dev/gitpro/internal/cli/helpers"
	"gitpro.dev/gitpro/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Stage every change and commit it",
		Long: `Stage every change in the working tree (modified, deleted and untracked files)
and record it as a new commit on the current branch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.CommitAction(ctx, actions.CommitOptions{Message: message})
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// newRecommitCmd creates the recommit command
func newRecommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "recommit",
		Short: "Change the message of the last commit",
		Long: `Replace the message of the commit at HEAD. The commit keeps its content and parents;
working tree changes are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.RecommitAction(ctx, actions.RecommitOptions{Message: message})
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "New commit message")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
