package git

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// ShortHashLength is the number of hash characters shown in summaries
const ShortHashLength = 7

// CommitInfo is the summary of a single commit
type CommitInfo struct {
	Hash    string
	Message string
	Author  string
	Time    time.Time
}

// ShortHash returns the abbreviated commit hash
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) <= ShortHashLength {
		return c.Hash
	}
	return c.Hash[:ShortHashLength]
}

// Subject returns the first line of the commit message
func (c CommitInfo) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return subject
}

// String renders the commit as "<hash> <unix seconds> <author> <subject>"
func (c CommitInfo) String() string {
	return fmt.Sprintf("%s %d <%s> %s", c.ShortHash(), c.Time.Unix(), c.Author, c.Subject())
}

func newCommitInfo(c *object.Commit) CommitInfo {
	return CommitInfo{
		Hash:    c.Hash.String(),
		Message: c.Message,
		Author:  c.Author.Name,
		Time:    c.Committer.When,
	}
}

// commitInfo loads a commit by hash
func (r *Repository) commitInfo(hash plumbing.Hash) (*CommitInfo, error) {
	c, err := r.CommitObject(hash)
	if err != nil {
		return nil, gperrors.NewBackendError("read commit "+hash.String(), err)
	}
	info := newCommitInfo(c)
	return &info, nil
}

// Log walks history from HEAD, newest first, and returns at most count commits.
// A parent is queued only after its child is emitted, so skewed committer dates never
// put a parent ahead of its child; merged lines interleave by committer date as in git log.
// It fails with ErrNoCommits when HEAD has no commit; a zero count on a non-empty
// history yields an empty slice.
func (r *Repository) Log(count int) ([]CommitInfo, error) {
	head, err := r.headCommitHash()
	if err != nil {
		return nil, err
	}

	iter, err := r.Repository.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, gperrors.ErrNoCommits
		}
		return nil, gperrors.NewBackendError("walk history", err)
	}
	defer iter.Close()

	commits := make([]CommitInfo, 0, max(count, 0))
	if count <= 0 {
		return commits, nil
	}

	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, newCommitInfo(c))
		if len(commits) >= count {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, gperrors.NewBackendError("walk history", err)
	}

	return commits, nil
}
