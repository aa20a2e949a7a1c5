package helpers

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/git"
)

// CompleteBranches is a helper for cobra.ValidArgsFunction and RegisterFlagCompletionFunc
// that returns all branch names in the repository.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	cwd, _ := cmd.Flags().GetString(FlagCwd)
	if cwd == "" {
		cwd = "."
	}
	repo, err := git.OpenRepository(cwd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := repo.GetBranchNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

// CompleteFirstArgBranch completes a branch name for the first positional argument only
func CompleteFirstArgBranch(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return CompleteBranches(cmd, args, toComplete)
}
