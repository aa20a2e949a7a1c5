package actions

import (
	"errors"
	"strings"

	"gitpro.dev/gitpro/internal/git"
	"gitpro.dev/gitpro/internal/runtime"
)

// ErrEmptyMessage is returned when a commit message is missing
var ErrEmptyMessage = errors.New("commit message must not be empty")

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Message string
}

// CommitAction stages every change in the working tree and commits it
func CommitAction(ctx *runtime.Context, opts CommitOptions) (*git.CommitInfo, error) {
	if strings.TrimSpace(opts.Message) == "" {
		return nil, ErrEmptyMessage
	}

	info, err := ctx.Repo.CommitAll(opts.Message)
	if err != nil {
		return nil, err
	}

	ctx.Splog.Debug("created commit %s", info.Hash)
	ctx.Splog.Info("Successfully committed changes with message: %s", opts.Message)
	return info, nil
}

// RecommitOptions contains options for the recommit command
type RecommitOptions struct {
	Message string
}

// RecommitAction replaces the message of the commit at HEAD, keeping its content
func RecommitAction(ctx *runtime.Context, opts RecommitOptions) (*git.CommitInfo, error) {
	if strings.TrimSpace(opts.Message) == "" {
		return nil, ErrEmptyMessage
	}

	info, err := ctx.Repo.Amend(opts.Message)
	if err != nil {
		return nil, err
	}

	ctx.Splog.Debug("amended commit is now %s", info.Hash)
	ctx.Splog.Info("Successfully updated the last commit message")
	return info, nil
}
