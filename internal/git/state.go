package git

import (
	"errors"
	"os"

	"github.com/go-git/go-billy/v5"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

// RepositoryState describes an operation that is in progress in the repository
type RepositoryState string

// Repository states, mirroring the markers git leaves in the git directory
const (
	StateClean             RepositoryState = "clean"
	StateMerge             RepositoryState = "merge"
	StateRevert            RepositoryState = "revert"
	StateCherryPick        RepositoryState = "cherry-pick"
	StateBisect            RepositoryState = "bisect"
	StateRebase            RepositoryState = "rebase"
	StateRebaseInteractive RepositoryState = "interactive rebase"
	StateApplyMailbox      RepositoryState = "am"
)

// stateMarkers is checked in order; the first marker found wins
var stateMarkers = []struct {
	path  string
	state RepositoryState
}{
	{"rebase-merge/interactive", StateRebaseInteractive},
	{"rebase-merge", StateRebase},
	{"rebase-apply/rebasing", StateRebase},
	{"rebase-apply/applying", StateApplyMailbox},
	{"rebase-apply", StateRebase},
	{"MERGE_HEAD", StateMerge},
	{"REVERT_HEAD", StateRevert},
	{"CHERRY_PICK_HEAD", StateCherryPick},
	{"BISECT_LOG", StateBisect},
}

// State reports which operation, if any, is in progress
func (r *Repository) State() (RepositoryState, error) {
	fs, err := r.gitDirFS()
	if err != nil {
		return "", err
	}

	for _, marker := range stateMarkers {
		exists, err := markerExists(fs, marker.path)
		if err != nil {
			return "", gperrors.NewBackendError("read repository state", err)
		}
		if exists {
			return marker.state, nil
		}
	}

	return StateClean, nil
}

// EnsureCleanState fails with ErrDirtyState when an operation is in progress
func (r *Repository) EnsureCleanState() error {
	state, err := r.State()
	if err != nil {
		return err
	}
	if state != StateClean {
		return gperrors.NewDirtyStateError(string(state))
	}
	return nil
}

func markerExists(fs billy.Filesystem, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
