package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitpro.dev/gitpro/internal/errors"
	"gitpro.dev/gitpro/internal/git"
	"gitpro.dev/gitpro/testhelpers"
)

// twoCommitScene leaves main two commits deep with an "old" branch at the first commit
func twoCommitScene(s *testhelpers.Scene) error {
	if err := s.Repo.CreateChangeAndCommit("first", "1"); err != nil {
		return err
	}
	if err := s.Repo.CreateBranch("old"); err != nil {
		return err
	}
	return s.Repo.CreateChangeAndCommit("second", "2")
}

func TestCreateBranch(t *testing.T) {
	t.Run("from HEAD without switching", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		require.NoError(t, repo.CreateBranch("feature", ""))

		require.Equal(t,
			testhelpers.Must(scene.Repo.GetCurrentSHA()),
			testhelpers.Must(scene.Repo.GetRevision("feature")))
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "main")
		testhelpers.ExpectBranches(t, scene.Repo, []string{"feature", "main"})
	})

	t.Run("from a base revision", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		require.NoError(t, repo.CreateBranch("from-old", "old"))
		require.NoError(t, repo.CreateBranch("from-sha", testhelpers.Must(scene.Repo.GetRevision("HEAD~1"))))
		require.NoError(t, repo.CreateBranch("from-rel", "HEAD~1"))

		oldSHA := testhelpers.Must(scene.Repo.GetRevision("old"))
		require.Equal(t, oldSHA, testhelpers.Must(scene.Repo.GetRevision("from-old")))
		require.Equal(t, oldSHA, testhelpers.Must(scene.Repo.GetRevision("from-sha")))
		require.Equal(t, oldSHA, testhelpers.Must(scene.Repo.GetRevision("from-rel")))
	})

	t.Run("rejects an existing name", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		before := testhelpers.Must(scene.Repo.GetRevision("old"))

		err := repo.CreateBranch("old", "main")
		require.ErrorIs(t, err, gperrors.ErrBranchExists)
		require.Equal(t, before, testhelpers.Must(scene.Repo.GetRevision("old")))
	})

	t.Run("rejects an unresolvable base", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		err := repo.CreateBranch("feature", "does-not-exist")
		require.ErrorIs(t, err, gperrors.ErrInvalidBase)
		testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	})

	t.Run("rejects an invalid name", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		err := repo.CreateBranch("bad..name", "")
		require.ErrorIs(t, err, gperrors.ErrBackend)
		testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	})

	t.Run("fails without commits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		err := repo.CreateBranch("feature", "")
		require.ErrorIs(t, err, gperrors.ErrNoCommits)
	})
}

func TestCheckoutBranch(t *testing.T) {
	t.Run("switches HEAD and the working tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		require.NoError(t, repo.CheckoutBranch("old"))

		testhelpers.ExpectCurrentBranch(t, scene.Repo, "old")
		require.True(t, scene.Repo.FileExists("1"))
		require.False(t, scene.Repo.FileExists("2"))
		status, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		require.Empty(t, status)
	})

	t.Run("carries local changes to a branch at the same commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateBranch("twin"))
		require.NoError(t, scene.Repo.CreateChange("edited", "1", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		require.NoError(t, repo.CheckoutBranch("twin"))

		testhelpers.ExpectCurrentBranch(t, scene.Repo, "twin")
		status, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		require.Contains(t, status, "1_test.txt")
	})

	t.Run("refuses to overwrite tracked changes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		require.NoError(t, scene.Repo.CreateChange("edited", "2", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		err := repo.CheckoutBranch("old")
		require.ErrorIs(t, err, gperrors.ErrDirtyState)
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "main")
	})

	t.Run("refuses to overwrite an untracked file the branch tracks", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		require.NoError(t, scene.Repo.CheckoutBranch("old"))
		require.NoError(t, scene.Repo.CreateChange("precious untracked", "2", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		err := repo.CheckoutBranch("main")
		require.ErrorIs(t, err, gperrors.ErrDirtyState)

		testhelpers.ExpectCurrentBranch(t, scene.Repo, "old")
		content, err := os.ReadFile(filepath.Join(scene.Dir, "2_test.txt"))
		require.NoError(t, err)
		require.Equal(t, "precious untracked", string(content))
	})

	t.Run("keeps untracked files the branch does not track", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		require.NoError(t, scene.Repo.CreateChange("scratch", "notes", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		require.NoError(t, repo.CheckoutBranch("old"))

		testhelpers.ExpectCurrentBranch(t, scene.Repo, "old")
		require.True(t, scene.Repo.FileExists("notes"))
	})

	t.Run("fails for a missing branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		err := repo.CheckoutBranch("missing")
		require.ErrorIs(t, err, gperrors.ErrBranchNotFound)
	})
}

func TestDeleteBranch(t *testing.T) {
	t.Run("removes the branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		require.NoError(t, scene.Repo.RunGitCommand("config", "branch.old.merge", "refs/heads/main"))
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		require.NoError(t, repo.DeleteBranch("old"))

		testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
		_, err := scene.Repo.RunGitCommandAndGetOutput("config", "branch.old.merge")
		require.Error(t, err)
	})

	t.Run("fails for a missing branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		err := repo.DeleteBranch("missing")
		require.ErrorIs(t, err, gperrors.ErrBranchNotFound)
	})

	t.Run("refuses the current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		err := repo.DeleteBranch("main")
		require.ErrorIs(t, err, gperrors.ErrBackend)
		require.ErrorIs(t, err, git.ErrCheckedOutBranch)
		testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	})
}

func TestRenameBranch(t *testing.T) {
	t.Run("renames a branch that is not checked out", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		oldSHA := testhelpers.Must(scene.Repo.GetRevision("old"))
		require.NoError(t, scene.Repo.RunGitCommand("config", "branch.old.merge", "refs/heads/main"))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		require.NoError(t, repo.RenameBranch("old", "older"))

		testhelpers.ExpectBranches(t, scene.Repo, []string{"main", "older"})
		require.Equal(t, oldSHA, testhelpers.Must(scene.Repo.GetRevision("older")))
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "main")

		merge, err := scene.Repo.RunGitCommandAndGetOutput("config", "branch.older.merge")
		require.NoError(t, err)
		require.Equal(t, "refs/heads/main", merge)
	})

	t.Run("moves HEAD with the current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sha := testhelpers.Must(scene.Repo.GetCurrentSHA())

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		require.NoError(t, repo.RenameBranch("main", "trunk"))

		testhelpers.ExpectCurrentBranch(t, scene.Repo, "trunk")
		testhelpers.ExpectBranches(t, scene.Repo, []string{"trunk"})
		require.Equal(t, sha, testhelpers.Must(scene.Repo.GetCurrentSHA()))
	})

	t.Run("never overwrites an existing branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, twoCommitScene)
		oldSHA := testhelpers.Must(scene.Repo.GetRevision("old"))
		mainSHA := testhelpers.Must(scene.Repo.GetRevision("main"))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		err := repo.RenameBranch("old", "main")
		require.ErrorIs(t, err, gperrors.ErrBranchExists)

		require.Equal(t, oldSHA, testhelpers.Must(scene.Repo.GetRevision("old")))
		require.Equal(t, mainSHA, testhelpers.Must(scene.Repo.GetRevision("main")))
	})

	t.Run("fails for a missing branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		err := repo.RenameBranch("missing", "other")
		require.ErrorIs(t, err, gperrors.ErrBranchNotFound)
		testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	})
}
