package git

import (
	"errors"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// BranchInfo describes a local branch
type BranchInfo struct {
	Name      string
	IsCurrent bool
}

// String renders the branch the way `git branch` does
func (b BranchInfo) String() string {
	if b.IsCurrent {
		return "* " + b.Name
	}
	return "  " + b.Name
}

// GetCurrentBranch returns HEAD's shorthand branch name, or "" when HEAD is detached
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", gperrors.NewBackendError("read HEAD", err)
	}

	if head.Type() == plumbing.SymbolicReference {
		if head.Target().IsBranch() {
			return head.Target().Short(), nil
		}
		return "", nil
	}
	return "", nil
}

// GetBranchNames returns all local branch names sorted lexicographically
func (r *Repository) GetBranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, gperrors.NewBackendError("list branches", err)
	}
	defer branches.Close()

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, gperrors.NewBackendError("iterate branches", err)
	}

	sort.Strings(names)
	return names, nil
}

// ListBranches returns all local branches sorted by name, marking the checked-out one
func (r *Repository) ListBranches() ([]BranchInfo, error) {
	names, err := r.GetBranchNames()
	if err != nil {
		return nil, err
	}
	current, err := r.GetCurrentBranch()
	if err != nil {
		return nil, err
	}

	branches := make([]BranchInfo, 0, len(names))
	for _, name := range names {
		branches = append(branches, BranchInfo{
			Name:      name,
			IsCurrent: name == current,
		})
	}
	return branches, nil
}

// BranchExists reports whether a local branch with the given name exists
func (r *Repository) BranchExists(name string) (bool, error) {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, gperrors.NewBackendError("find branch "+name, err)
}

// GetRevision returns the commit SHA a branch points at
func (r *Repository) GetRevision(name string) (string, error) {
	ref, err := r.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", gperrors.NewBranchNotFoundError(name)
		}
		return "", gperrors.NewBackendError("find branch "+name, err)
	}
	return ref.Hash().String(), nil
}
