package branch

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/actions"
	"gitpro.dev/gitpro/internal/cli/helpers"
	"gitpro.dev/gitpro/internal/runtime"
)

// NewDeleteRegexCmd creates the `branch del-regex` command
func NewDeleteRegexCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "del-regex <pattern>",
		Short: "Delete every local branch matching a regular expression",
		Long: `Delete every local branch whose name matches a regular expression, except the
branch currently checked out.

The pattern must match the whole branch name unless branch.patternMatch is set
to "substring" in the configuration. Matching branches are listed and confirmed
before deletion unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.DeleteBranchesByPatternAction(ctx, actions.DeletePatternOptions{
					Pattern: args[0],
					Force:   force,
				})
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without asking for confirmation")

	return cmd
}
