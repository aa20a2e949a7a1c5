package runtime_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitpro.dev/gitpro/internal/config"
	gperrors "gitpro.dev/gitpro/internal/errors"
	"gitpro.dev/gitpro/internal/runtime"
	"gitpro.dev/gitpro/testhelpers"
)

func TestGetContext(t *testing.T) {
	t.Run("opens the repository and loads repository settings", func(t *testing.T) {
		t.Setenv("GITPRO_CONFIG", filepath.Join(t.TempDir(), "none.yml"))
		t.Setenv("GITPRO_LOG_FILE", "")
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteGitDirFile(config.RepoConfigFile, "log:\n  count: 4\n"))

		ctx, err := runtime.GetContext(runtime.Options{Cwd: scene.Dir, NoColor: true})
		require.NoError(t, err)
		t.Cleanup(func() { _ = ctx.Close() })

		require.NotNil(t, ctx.Repo)
		require.NotNil(t, ctx.Splog)
		require.NotNil(t, ctx.Confirmer)
		require.Equal(t, 4, ctx.Config.Log.Count)
	})

	t.Run("writes the log file when configured", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "git-pro.log")
		t.Setenv("GITPRO_CONFIG", filepath.Join(t.TempDir(), "none.yml"))
		t.Setenv("GITPRO_LOG_FILE", logFile)
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		ctx, err := runtime.GetContext(runtime.Options{Cwd: scene.Dir, NoColor: true})
		require.NoError(t, err)
		ctx.Splog.Debug("hello from test")
		require.NoError(t, ctx.Close())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "hello from test")
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := runtime.GetContext(runtime.Options{Cwd: t.TempDir()})
		require.ErrorIs(t, err, gperrors.ErrNotARepository)
	})

	t.Run("reports invalid settings", func(t *testing.T) {
		t.Setenv("GITPRO_CONFIG", filepath.Join(t.TempDir(), "none.yml"))
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteGitDirFile(config.RepoConfigFile, "branch:\n  patternMatch: glob\n"))

		_, err := runtime.GetContext(runtime.Options{Cwd: scene.Dir})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to load config")
	})
}
