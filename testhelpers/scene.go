package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository,
// and changes the process working directory into it.
// It automatically handles cleanup using t.Cleanup().
// NOTE: This function is NOT safe for parallel tests as it changes the working directory.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	scene := newScene(t)

	// Save current directory
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	scene.oldDir = oldDir

	// Change to temp directory
	if err := os.Chdir(scene.Dir); err != nil {
		os.RemoveAll(scene.Dir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	// Run custom setup if provided
	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(scene.Dir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	// Register cleanup
	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(scene.Dir)
		}
	})

	return scene
}

// NewSceneParallel creates a scene without changing the working directory.
// Use this for tests that only drive the CLI binary with an explicit directory.
func NewSceneParallel(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	scene := newScene(t)

	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(scene.Dir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(scene.Dir)
		}
	})

	return scene
}

func newScene(t *testing.T) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gitpro-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	return &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
