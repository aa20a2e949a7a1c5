package branch

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/actions"
	"gitpro.dev/gitpro/internal/cli/helpers"
	"gitpro.dev/gitpro/internal/runtime"
)

// NewCreateCmd creates the `branch new` command
func NewCreateCmd() *cobra.Command {
	var (
		base       string
		switchToIt bool
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new branch",
		Long: `Create a new branch at HEAD, or at --base when given. The base may be a branch,
a tag, a commit hash or any revision such as HEAD~2.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CreateBranchAction(ctx, actions.CreateBranchOptions{
					Name:   args[0],
					Base:   base,
					Switch: switchToIt,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "Revision to start the branch from (defaults to HEAD)")
	cmd.Flags().BoolVarP(&switchToIt, "switch", "s", false, "Switch to the new branch")
	_ = cmd.RegisterFlagCompletionFunc("base", helpers.CompleteBranches)

	return cmd
}
