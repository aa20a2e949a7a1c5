package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitpro.dev/gitpro/internal/errors"
	"gitpro.dev/gitpro/internal/git"
	"gitpro.dev/gitpro/testhelpers"
)

func TestCommitAll(t *testing.T) {
	t.Run("creates one commit on top of HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		before, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CreateChange("change", "2", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		info, err := repo.CommitAll("second commit")
		require.NoError(t, err)
		require.Equal(t, "second commit", info.Subject())
		require.Equal(t, "Test User", info.Author)

		after, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, info.Hash, after)

		parent, err := scene.Repo.GetRevision("HEAD~1")
		require.NoError(t, err)
		require.Equal(t, before, parent)

		count, err := scene.Repo.GetCommitCount("HEAD")
		require.NoError(t, err)
		require.Equal(t, 2, count)

		status, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		require.Empty(t, status)
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "main")
	})

	t.Run("creates a root commit in an empty repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Repo.CreateChange("first", "1", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		_, err := repo.CommitAll("root")
		require.NoError(t, err)

		count, err := scene.Repo.GetCommitCount("main")
		require.NoError(t, err)
		require.Equal(t, 1, count)
		testhelpers.ExpectCommits(t, scene.Repo, []string{"root"})
	})

	t.Run("includes deletions", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.DeleteFile("1"))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		_, err := repo.CommitAll("remove file")
		require.NoError(t, err)

		files, err := scene.Repo.RunGitCommandAndGetOutput("ls-tree", "--name-only", "HEAD")
		require.NoError(t, err)
		require.NotContains(t, files, "1_test.txt")
	})

	t.Run("fails with nothing to commit and leaves HEAD alone", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		before, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		_, err = repo.CommitAll("nothing")
		require.ErrorIs(t, err, gperrors.ErrNothingToCommit)

		after, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("refuses during a merge without staging anything", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sha, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.NoError(t, scene.Repo.WriteGitDirFile("MERGE_HEAD", sha+"\n"))
		require.NoError(t, scene.Repo.CreateChange("pending", "2", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		_, err = repo.CommitAll("mid-merge")
		require.ErrorIs(t, err, gperrors.ErrDirtyState)

		status, err := scene.Repo.StatusPorcelain()
		require.NoError(t, err)
		require.Contains(t, status, "?? 2_test.txt")
	})
}

func TestAmend(t *testing.T) {
	t.Run("rewrites only the message", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("first", "1"); err != nil {
				return err
			}
			return s.Repo.CreateChangeAndCommit("second", "2")
		})

		oldSHA := testhelpers.Must(scene.Repo.GetCurrentSHA())
		oldTree := testhelpers.Must(scene.Repo.GetRevision("HEAD^{tree}"))
		oldParent := testhelpers.Must(scene.Repo.GetRevision("HEAD~1"))

		// Working tree changes must not be folded into the amended commit
		require.NoError(t, scene.Repo.CreateChange("not staged", "3", true))

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		info, err := repo.Amend("second, reworded")
		require.NoError(t, err)
		require.Equal(t, "second, reworded", info.Subject())

		newSHA := testhelpers.Must(scene.Repo.GetCurrentSHA())
		require.NotEqual(t, oldSHA, newSHA)
		require.Equal(t, info.Hash, newSHA)
		require.Equal(t, oldTree, testhelpers.Must(scene.Repo.GetRevision("HEAD^{tree}")))
		require.Equal(t, oldParent, testhelpers.Must(scene.Repo.GetRevision("HEAD~1")))
		require.Equal(t, newSHA, testhelpers.Must(scene.Repo.GetRevision("main")))

		testhelpers.ExpectCommits(t, scene.Repo, []string{"second, reworded", "first"})
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "main")
	})

	t.Run("amends a root commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		_, err := repo.Amend("root reworded")
		require.NoError(t, err)

		count, err := scene.Repo.GetCommitCount("HEAD")
		require.NoError(t, err)
		require.Equal(t, 1, count)
		testhelpers.ExpectCommits(t, scene.Repo, []string{"root reworded"})
	})

	t.Run("fails without commits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		repo := testhelpers.Must(git.OpenRepository(scene.Dir))
		_, err := repo.Amend("nothing to amend")
		require.ErrorIs(t, err, gperrors.ErrNoCommits)
	})
}
