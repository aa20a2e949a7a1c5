// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"gitpro.dev/gitpro/internal/runtime"
)

// Global flag names shared by every command
const (
	FlagCwd     = "cwd"
	FlagDebug   = "debug"
	FlagNoColor = "no-color"
)

// ContextOptions reads the global flags of a command
func ContextOptions(cmd *cobra.Command) runtime.Options {
	var opts runtime.Options
	opts.Cwd, _ = cmd.Flags().GetString(FlagCwd)
	opts.Debug, _ = cmd.Flags().GetBool(FlagDebug)
	opts.NoColor, _ = cmd.Flags().GetBool(FlagNoColor)
	return opts
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(ContextOptions(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()

	ctx.Splog.Debug("running %s", cmd.CommandPath())
	return fn(ctx)
}
