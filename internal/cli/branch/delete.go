package branch

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/actions"
	"gitpro.dev/gitpro/internal/cli/helpers"
	"gitpro.dev/gitpro/internal/runtime"
)

// NewDeleteCmd creates the `branch del` command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "del <name>",
		Short:             "Delete a local branch",
		Long:              `Delete a local branch. The branch currently checked out cannot be deleted.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteFirstArgBranch,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DeleteBranchAction(ctx, args[0])
			})
		},
	}

	return cmd
}
