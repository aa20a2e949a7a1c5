package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/cli/branch"
	"gitpro.dev/gitpro/internal/cli/helpers"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-pro",
		Short: "git-pro is a small git companion for everyday commit and branch chores",
		Long: `git-pro is a small git companion for everyday commit and branch chores.

It commits everything in one step, rewords the last commit, shows a compact log
and manages local branches, including bulk deletion by regular expression.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringP(helpers.FlagCwd, "C", "", "Run as if git-pro was started in this directory")
	rootCmd.PersistentFlags().Bool(helpers.FlagDebug, false, "Print debug output")
	rootCmd.PersistentFlags().Bool(helpers.FlagNoColor, false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newRecommitCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(branch.NewBranchCmd())

	return rootCmd
}
