package branch

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/actions"
	"gitpro.dev/gitpro/internal/cli/helpers"
	"gitpro.dev/gitpro/internal/runtime"
)

// NewRenameCmd creates the `branch rename` command
func NewRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a local branch",
		Long: `Rename a local branch. An existing branch is never overwritten.
Renaming the current branch keeps it checked out under the new name.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: helpers.CompleteFirstArgBranch,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RenameBranchAction(ctx, args[0], args[1])
			})
		},
	}

	return cmd
}
