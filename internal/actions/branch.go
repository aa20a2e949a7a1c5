package actions

import (
	"gitpro.dev/gitpro/internal/git"
	"gitpro.dev/gitpro/internal/runtime"
	"gitpro.dev/gitpro/internal/tui/style"
)

// ListBranchesAction prints every local branch, marking the checked-out one
func ListBranchesAction(ctx *runtime.Context) ([]git.BranchInfo, error) {
	branches, err := ctx.Repo.ListBranches()
	if err != nil {
		return nil, err
	}

	for _, b := range branches {
		marker := "  "
		if b.IsCurrent {
			marker = "* "
		}
		ctx.Splog.Info("%s%s", marker, style.ColorBranchName(b.Name, b.IsCurrent))
	}
	return branches, nil
}

// CreateBranchOptions contains options for creating a branch
type CreateBranchOptions struct {
	Name string
	// Base is any revision resolving to a commit; empty means HEAD
	Base   string
	Switch bool
}

// CreateBranchAction creates a branch and optionally checks it out.
// When the checkout fails the new branch is kept.
func CreateBranchAction(ctx *runtime.Context, opts CreateBranchOptions) error {
	if err := ctx.Repo.CreateBranch(opts.Name, opts.Base); err != nil {
		return err
	}

	if opts.Base != "" {
		ctx.Splog.Info("Created branch '%s' from '%s'", opts.Name, opts.Base)
	} else {
		ctx.Splog.Info("Created branch '%s'", opts.Name)
	}

	if !opts.Switch {
		return nil
	}
	return SwitchBranchAction(ctx, opts.Name)
}

// SwitchBranchAction checks out an existing branch
func SwitchBranchAction(ctx *runtime.Context, name string) error {
	if err := ctx.Repo.CheckoutBranch(name); err != nil {
		return err
	}
	ctx.Splog.Info("Switched to branch '%s'", name)
	return nil
}

// SwitchOrCreateAction checks out name, creating it from HEAD first if it does not exist
func SwitchOrCreateAction(ctx *runtime.Context, name string) error {
	exists, err := ctx.Repo.BranchExists(name)
	if err != nil {
		return err
	}
	if exists {
		return SwitchBranchAction(ctx, name)
	}

	ctx.Splog.Debug("branch %s does not exist, creating it from HEAD", name)
	return CreateBranchAction(ctx, CreateBranchOptions{Name: name, Switch: true})
}

// DeleteBranchAction deletes a local branch that is not checked out
func DeleteBranchAction(ctx *runtime.Context, name string) error {
	if err := ctx.Repo.DeleteBranch(name); err != nil {
		return err
	}
	ctx.Splog.Info("Deleted branch '%s'", name)
	return nil
}

// RenameBranchAction renames a local branch without overwriting another
func RenameBranchAction(ctx *runtime.Context, oldName, newName string) error {
	if err := ctx.Repo.RenameBranch(oldName, newName); err != nil {
		return err
	}
	ctx.Splog.Info("Renamed branch '%s' to '%s'", oldName, newName)
	return nil
}
