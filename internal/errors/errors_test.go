package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitpro.dev/gitpro/internal/errors"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"branch not found", gperrors.NewBranchNotFoundError("feature"), gperrors.ErrBranchNotFound},
		{"branch exists", gperrors.NewBranchExistsError("main"), gperrors.ErrBranchExists},
		{"invalid base", gperrors.NewInvalidBaseError("nope", nil), gperrors.ErrInvalidBase},
		{"invalid pattern", gperrors.NewInvalidPatternError("(", errors.New("missing )")), gperrors.ErrInvalidPattern},
		{"dirty state", gperrors.NewDirtyStateError("merge"), gperrors.ErrDirtyState},
		{"backend", gperrors.NewBackendError("open", errors.New("boom")), gperrors.ErrBackend},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)

			wrapped := fmt.Errorf("outer: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.sentinel)
		})
	}
}

func TestBackendErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := gperrors.NewBackendError("write index", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "git error: write index: permission denied", err.Error())
}

func TestBatchDeleteError(t *testing.T) {
	t.Run("lists already deleted branches", func(t *testing.T) {
		err := gperrors.NewBatchDeleteError([]string{"feature/a"}, "feature/b", gperrors.NewBranchNotFoundError("feature/b"))

		require.ErrorIs(t, err, gperrors.ErrBranchNotFound)
		require.Contains(t, err.Error(), "feature/b")
		require.Contains(t, err.Error(), "already deleted: feature/a")

		var batchErr *gperrors.BatchDeleteError
		require.True(t, errors.As(err, &batchErr))
		require.Equal(t, []string{"feature/a"}, batchErr.Deleted)
	})

	t.Run("omits progress when nothing was deleted", func(t *testing.T) {
		err := gperrors.NewBatchDeleteError(nil, "feature/a", errors.New("locked"))
		require.NotContains(t, err.Error(), "already deleted")
	})
}

func TestDirtyStateErrorMessages(t *testing.T) {
	require.Equal(t, "repository is not in a clean state (merge in progress)", gperrors.NewDirtyStateError("merge").Error())
	require.Contains(t, gperrors.NewUncommittedChangesError().Error(), "would be overwritten")
}
