package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// OpenRepository opens the git repository containing the given path.
// Parent directories are searched for a .git entry, like the git CLI does.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, gperrors.ErrNotARepository
		}
		return nil, gperrors.NewBackendError("open repository", err)
	}

	root := absPath
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Repository{
		Repository: repo,
		path:       root,
	}, nil
}

// GetRepoRoot returns the root directory of the working tree
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// gitDirFS returns the filesystem backing the repository storage (the .git directory)
func (r *Repository) gitDirFS() (billy.Filesystem, error) {
	storage, ok := r.Storer.(*filesystem.Storage)
	if !ok {
		return nil, gperrors.NewBackendError("locate git directory", fmt.Errorf("unsupported storage %T", r.Storer))
	}
	return storage.Filesystem(), nil
}

// GitDir returns the absolute path of the git directory
func (r *Repository) GitDir() (string, error) {
	fs, err := r.gitDirFS()
	if err != nil {
		return "", err
	}
	return fs.Root(), nil
}

// worktree returns the working tree, mapping backend failures
func (r *Repository) worktree() (*git.Worktree, error) {
	wt, err := r.Worktree()
	if err != nil {
		return nil, gperrors.NewBackendError("open worktree", err)
	}
	return wt, nil
}

// headCommitHash returns the commit HEAD points at, or ErrNoCommits on an unborn branch
func (r *Repository) headCommitHash() (*plumbing.Reference, error) {
	head, err := r.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, gperrors.ErrNoCommits
		}
		return nil, gperrors.NewBackendError("resolve HEAD", err)
	}
	return head, nil
}
