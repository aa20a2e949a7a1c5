// Package branch provides the CLI commands for managing local branches.
package branch

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/actions"
	"gitpro.dev/gitpro/internal/cli/helpers"
	"gitpro.dev/gitpro/internal/runtime"
)

// NewBranchCmd creates the branch command and its subcommands
func NewBranchCmd() *cobra.Command {
	var switchTo string

	cmd := &cobra.Command{
		Use:   "branch",
		Short: "List, switch to and manage local branches",
		Long: `Without arguments, list local branches sorted by name with the current one marked by '*'.

With --switch, check out the named branch, creating it from HEAD first if it does not exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if cmd.Flags().Changed("switch") {
					return actions.SwitchOrCreateAction(ctx, switchTo)
				}
				_, err := actions.ListBranchesAction(ctx)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&switchTo, "switch", "s", "", "Switch to a branch, creating it if needed")
	_ = cmd.RegisterFlagCompletionFunc("switch", helpers.CompleteBranches)

	cmd.AddCommand(NewCreateCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewRenameCmd())
	cmd.AddCommand(NewDeleteRegexCmd())

	return cmd
}
