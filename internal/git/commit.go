package git

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// CommitAll stages every change in the working tree and commits it on top of HEAD.
// On an unborn branch the commit has no parent.
func (r *Repository) CommitAll(message string) (*CommitInfo, error) {
	if err := r.EnsureCleanState(); err != nil {
		return nil, err
	}

	changed, err := r.HasChanges()
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, gperrors.ErrNothingToCommit
	}

	if _, err := r.StageAll(); err != nil {
		return nil, err
	}

	sig, err := r.DefaultSignature()
	if err != nil {
		return nil, err
	}

	wt, err := r.worktree()
	if err != nil {
		return nil, err
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author:    sig,
		Committer: sig,
	})
	if err != nil {
		return nil, gperrors.NewBackendError("create commit", err)
	}

	return r.commitInfo(hash)
}

// Amend replaces the message of the commit HEAD points at. The tree and parents are
// preserved; the branch (or detached HEAD) is moved to the rewritten commit.
func (r *Repository) Amend(message string) (*CommitInfo, error) {
	head, err := r.headCommitHash()
	if err != nil {
		return nil, err
	}

	tip, err := r.CommitObject(head.Hash())
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, gperrors.ErrNoCommits
		}
		return nil, gperrors.NewBackendError("read HEAD commit", err)
	}

	sig, err := r.DefaultSignature()
	if err != nil {
		return nil, err
	}

	amended := &object.Commit{
		Author:       *sig,
		Committer:    *sig,
		Message:      message,
		TreeHash:     tip.TreeHash,
		ParentHashes: tip.ParentHashes,
		Encoding:     tip.Encoding,
	}

	obj := r.Storer.NewEncodedObject()
	if err := amended.Encode(obj); err != nil {
		return nil, gperrors.NewBackendError("encode commit", err)
	}
	hash, err := r.Storer.SetEncodedObject(obj)
	if err != nil {
		return nil, gperrors.NewBackendError("write commit", err)
	}

	// head.Name() is the branch for an attached HEAD and HEAD itself when detached
	if err := r.Storer.SetReference(plumbing.NewHashReference(head.Name(), hash)); err != nil {
		return nil, gperrors.NewBackendError("update "+head.Name().String(), err)
	}

	return r.commitInfo(hash)
}
