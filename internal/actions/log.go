package actions

import (
	"fmt"

	"gitpro.dev/gitpro/internal/git"
	"gitpro.dev/gitpro/internal/runtime"
	"gitpro.dev/gitpro/internal/tui/style"
)

// LogOptions contains options for the log command
type LogOptions struct {
	// Count is the number of commits to show; nil uses the configured default
	Count *int
}

// LogAction prints the most recent commits reachable from HEAD, newest first
func LogAction(ctx *runtime.Context, opts LogOptions) ([]git.CommitInfo, error) {
	count := ctx.Config.Log.Count
	if opts.Count != nil {
		count = *opts.Count
	}
	if count < 0 {
		return nil, fmt.Errorf("commit count must not be negative, got %d", count)
	}

	commits, err := ctx.Repo.Log(count)
	if err != nil {
		return nil, err
	}

	for _, c := range commits {
		ctx.Splog.Info("%s", formatCommit(c))
	}
	return commits, nil
}

// formatCommit renders a commit like CommitInfo.String, with colours when enabled
func formatCommit(c git.CommitInfo) string {
	return fmt.Sprintf("%s %d <%s> %s",
		style.ColorHash(c.ShortHash()),
		c.Time.Unix(),
		style.ColorAuthor(c.Author),
		c.Subject(),
	)
}
