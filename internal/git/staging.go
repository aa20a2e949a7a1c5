package git

import (
	"sort"

	"github.com/go-git/go-git/v5"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// Status returns the working tree status, untracked files included
func (r *Repository) Status() (git.Status, error) {
	wt, err := r.worktree()
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, gperrors.NewBackendError("read status", err)
	}
	return status, nil
}

// HasChanges reports whether anything differs from HEAD, including untracked files
func (r *Repository) HasChanges() (bool, error) {
	status, err := r.Status()
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}

// HasTrackedChanges reports whether tracked files have staged or unstaged modifications.
// Untracked files are ignored.
func (r *Repository) HasTrackedChanges() (bool, error) {
	status, err := r.Status()
	if err != nil {
		return false, err
	}
	for _, fs := range status {
		if fs.Staging == git.Untracked && fs.Worktree == git.Untracked {
			continue
		}
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			return true, nil
		}
	}
	return false, nil
}

// StageAll stages every change: modifications, deletions and untracked files.
// It returns the staged paths in sorted order.
func (r *Repository) StageAll() ([]string, error) {
	wt, err := r.worktree()
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, gperrors.NewBackendError("read status", err)
	}

	var paths []string
	for path, fs := range status {
		if fs.Worktree == git.Unmodified {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		// Add removes the index entry when the file no longer exists on disk
		if _, err := wt.Add(path); err != nil {
			return nil, gperrors.NewBackendError("stage "+path, err)
		}
	}
	return paths, nil
}
