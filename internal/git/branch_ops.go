package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// ErrCheckedOutBranch is wrapped in a BackendError when deleting the current branch
var ErrCheckedOutBranch = errors.New("cannot delete the currently checked out branch")

// validateBranchName rejects names git would refuse as refs/heads/<name>
func validateBranchName(name string) error {
	if name == "" {
		return gperrors.NewBackendError("validate branch name", fmt.Errorf("branch name is empty"))
	}
	if err := plumbing.NewBranchReferenceName(name).Validate(); err != nil {
		return gperrors.NewBackendError(fmt.Sprintf("validate branch name '%s'", name), err)
	}
	return nil
}

// ResolveCommit resolves a revision (branch, tag, SHA, HEAD~n, ...) to a commit hash.
// An empty revision resolves to HEAD.
func (r *Repository) ResolveCommit(rev string) (plumbing.Hash, error) {
	if rev == "" {
		head, err := r.headCommitHash()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return head.Hash(), nil
	}

	hash, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, gperrors.NewInvalidBaseError(rev, err)
	}
	if _, err := r.CommitObject(*hash); err != nil {
		return plumbing.ZeroHash, gperrors.NewInvalidBaseError(rev, err)
	}
	return *hash, nil
}

// CreateBranch creates a branch pointing at base (HEAD when empty) without checking it out
func (r *Repository) CreateBranch(name, base string) error {
	if err := validateBranchName(name); err != nil {
		return err
	}

	exists, err := r.BranchExists(name)
	if err != nil {
		return err
	}
	if exists {
		return gperrors.NewBranchExistsError(name)
	}

	target, err := r.ResolveCommit(base)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), target)
	if err := r.Storer.SetReference(ref); err != nil {
		return gperrors.NewBackendError("create branch "+name, err)
	}
	return nil
}

// CheckoutBranch switches HEAD and the working tree to an existing branch.
// When the branch tip is the commit already checked out, local changes are carried over
// untouched; otherwise tracked changes must be committed first and no untracked file
// may sit where the branch tracks one.
func (r *Repository) CheckoutBranch(name string) error {
	refName := plumbing.NewBranchReferenceName(name)
	ref, err := r.Reference(refName, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return gperrors.NewBranchNotFoundError(name)
		}
		return gperrors.NewBackendError("find branch "+name, err)
	}

	// Same commit: only HEAD moves, the index and working tree stay as they are
	if head, err := r.headCommitHash(); err == nil && head.Hash() == ref.Hash() {
		if err := r.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, refName)); err != nil {
			return gperrors.NewBackendError("checkout "+name, err)
		}
		return nil
	}

	if err := r.ensureCheckoutSafe(ref.Hash()); err != nil {
		return err
	}

	wt, err := r.worktree()
	if err != nil {
		return err
	}

	err = wt.Checkout(&git.CheckoutOptions{Branch: refName})
	if err != nil {
		if errors.Is(err, git.ErrUnstagedChanges) {
			return gperrors.NewUncommittedChangesError()
		}
		return gperrors.NewBackendError("checkout "+name, err)
	}
	return nil
}

// ensureCheckoutSafe fails when switching to target would lose local work: any tracked
// change, or an untracked file at a path the target commit tracks
func (r *Repository) ensureCheckoutSafe(target plumbing.Hash) error {
	dirty, err := r.HasTrackedChanges()
	if err != nil {
		return err
	}
	if dirty {
		return gperrors.NewUncommittedChangesError()
	}

	status, err := r.Status()
	if err != nil {
		return err
	}
	commit, err := r.CommitObject(target)
	if err != nil {
		return gperrors.NewBackendError("read commit "+target.String(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return gperrors.NewBackendError("read tree "+target.String(), err)
	}

	for path, fs := range status {
		if fs.Worktree != git.Untracked {
			continue
		}
		if _, err := tree.FindEntry(path); err == nil {
			return gperrors.NewUncommittedChangesError()
		}
	}
	return nil
}

// DeleteBranch deletes a local branch and its config section.
// The checked-out branch cannot be deleted.
func (r *Repository) DeleteBranch(name string) error {
	exists, err := r.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return gperrors.NewBranchNotFoundError(name)
	}

	current, err := r.GetCurrentBranch()
	if err != nil {
		return err
	}
	if current == name {
		return gperrors.NewBackendError("delete branch "+name, ErrCheckedOutBranch)
	}

	if err := r.Storer.RemoveReference(plumbing.NewBranchReferenceName(name)); err != nil {
		return gperrors.NewBackendError("delete branch "+name, err)
	}

	if err := r.Repository.DeleteBranch(name); err != nil && !errors.Is(err, git.ErrBranchNotFound) {
		return gperrors.NewBackendError("remove config for branch "+name, err)
	}
	return nil
}

// RenameBranch renames a local branch. It never overwrites an existing branch.
// If the renamed branch is checked out, HEAD follows it.
func (r *Repository) RenameBranch(oldName, newName string) error {
	oldRefName := plumbing.NewBranchReferenceName(oldName)
	oldRef, err := r.Reference(oldRefName, false)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return gperrors.NewBranchNotFoundError(oldName)
		}
		return gperrors.NewBackendError("find branch "+oldName, err)
	}

	if err := validateBranchName(newName); err != nil {
		return err
	}
	exists, err := r.BranchExists(newName)
	if err != nil {
		return err
	}
	if exists {
		return gperrors.NewBranchExistsError(newName)
	}

	current, err := r.GetCurrentBranch()
	if err != nil {
		return err
	}

	newRefName := plumbing.NewBranchReferenceName(newName)
	if err := r.Storer.SetReference(plumbing.NewHashReference(newRefName, oldRef.Hash())); err != nil {
		return gperrors.NewBackendError("create branch "+newName, err)
	}

	if current == oldName {
		if err := r.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, newRefName)); err != nil {
			return gperrors.NewBackendError("update HEAD", err)
		}
	}

	if err := r.Storer.RemoveReference(oldRefName); err != nil {
		return gperrors.NewBackendError("delete branch "+oldName, err)
	}

	return r.moveBranchConfig(oldName, newName)
}

// moveBranchConfig carries a [branch "old"] config section over to the new name
func (r *Repository) moveBranchConfig(oldName, newName string) error {
	cfg, err := r.Config()
	if err != nil {
		return gperrors.NewBackendError("read config", err)
	}
	section, ok := cfg.Branches[oldName]
	if !ok {
		return nil
	}

	if err := r.Repository.DeleteBranch(oldName); err != nil {
		return gperrors.NewBackendError("remove config for branch "+oldName, err)
	}

	moved := &gitconfig.Branch{
		Name:   newName,
		Remote: section.Remote,
		Merge:  section.Merge,
		Rebase: section.Rebase,
	}
	if err := r.Repository.CreateBranch(moved); err != nil {
		return gperrors.NewBackendError("write config for branch "+newName, err)
	}
	return nil
}
