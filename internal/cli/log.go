package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/actions"
	"gitpro.dev/gitpro/internal/cli/helpers"
	"gitpro.dev/gitpro/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [count]",
		Short: "Show the most recent commits on the current branch",
		Long: `Show the most recent commits reachable from HEAD, newest first, one per line:

  <short hash> <unix time> <author> <subject>

The count defaults to 10, or to log.count from the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts actions.LogOptions
			if len(args) > 0 {
				count, err := strconv.Atoi(args[0])
				if err != nil || count < 0 {
					return fmt.Errorf("invalid count %q: expected a non-negative integer", args[0])
				}
				opts.Count = &count
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.LogAction(ctx, opts)
				return err
			})
		},
	}

	return cmd
}
