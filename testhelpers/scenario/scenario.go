// Package scenario provides a high-level test scenario that combines a Scene,
// an opened repository and a runtime Context to provide a terse API for tests.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"gitpro.dev/gitpro/internal/config"
	"gitpro.dev/gitpro/internal/git"
	"gitpro.dev/gitpro/internal/runtime"
	"gitpro.dev/gitpro/internal/tui"
	"gitpro.dev/gitpro/testhelpers"
)

// Scenario represents a high-level test scenario that combines a Scene,
// a repository handle and a runtime Context.
type Scenario struct {
	T          *testing.T
	Scene      *testhelpers.Scene
	Context    *runtime.Context
	Confirmer  *tui.StaticConfirmer
	BinaryPath string

	output *bytes.Buffer
}

// NewScenario creates a new Scenario with an optional setup function.
// Console output is captured and the confirmer answers "no" until told otherwise.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv and NewScene.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	// Force non-interactive mode for tests
	t.Setenv("GITPRO_NON_INTERACTIVE", "true")

	scene := testhelpers.NewScene(t, setup)
	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)

	tui.SetColorEnabled(false)

	output := &bytes.Buffer{}
	confirmer := &tui.StaticConfirmer{}
	ctx := runtime.NewContext(repo, tui.NewSplogWithWriter(output), config.Default(), confirmer)

	return &Scenario{
		T:         t,
		Scene:     scene,
		Context:   ctx,
		Confirmer: confirmer,
		output:    output,
	}
}

// NewScenarioParallel creates a new Scenario that is safe for parallel tests.
// It does NOT set environment variables or open the repository.
// Use this for tests that primarily call the CLI binary.
func NewScenarioParallel(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()
	scene := testhelpers.NewSceneParallel(t, setup)
	return &Scenario{
		T:     t,
		Scene: scene,
	}
}

// Output returns everything written to the console so far
func (s *Scenario) Output() string {
	return s.output.String()
}

// ResetOutput discards captured console output
func (s *Scenario) ResetOutput() *Scenario {
	s.output.Reset()
	return s
}

// ConfirmWith sets the answer the confirmer gives
func (s *Scenario) ConfirmWith(answer bool) *Scenario {
	s.Confirmer.Answer = answer
	return s
}

// WithConfig edits the settings seen by actions
func (s *Scenario) WithConfig(edit func(*config.Config)) *Scenario {
	edit(s.Context.Config)
	return s
}

// WithInitialCommit creates an initial commit on the main branch.
func (s *Scenario) WithInitialCommit() *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChangeAndCommit("initial", "init")
	require.NoError(s.T, err)
	return s
}

// WithUncommittedChange creates an uncommitted change in the repository.
func (s *Scenario) WithUncommittedChange(name string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChange("unstaged content", name, true)
	require.NoError(s.T, err)
	return s
}

// WithBranches creates branches at HEAD without checking them out.
func (s *Scenario) WithBranches(names ...string) *Scenario {
	s.T.Helper()
	for _, name := range names {
		require.NoError(s.T, s.Scene.Repo.CreateBranch(name))
	}
	return s
}

// Checkout checks out a branch.
func (s *Scenario) Checkout(branch string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CheckoutBranch(branch)
	require.NoError(s.T, err)
	return s
}

// CreateBranch creates and checks out a new branch.
func (s *Scenario) CreateBranch(name string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateAndCheckoutBranch(name)
	require.NoError(s.T, err)
	return s
}

// CommitChange creates a file change and commits it.
func (s *Scenario) CommitChange(name, message string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChangeAndCommit(message, name)
	require.NoError(s.T, err)
	return s
}

// WithBinaryPath sets the path to the git-pro binary for RunCli methods.
func (s *Scenario) WithBinaryPath(path string) *Scenario {
	s.BinaryPath = path
	return s
}

func (s *Scenario) cliCommand(args ...string) *exec.Cmd {
	cmd := exec.Command(s.BinaryPath, args...)
	cmd.Dir = s.Scene.Dir
	cmd.Env = append(os.Environ(),
		"GITPRO_NON_INTERACTIVE=true",
		"GITPRO_LOG_FILE=",
		"GITPRO_CONFIG="+s.Scene.Dir+"/.git/no-user-config.yml",
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	return cmd
}

// RunCli executes a git-pro CLI command and requires it to succeed.
func (s *Scenario) RunCli(args ...string) *Scenario {
	s.T.Helper()
	if s.BinaryPath == "" {
		s.T.Fatal("BinaryPath not set. Call WithBinaryPath first.")
	}
	output, err := s.cliCommand(args...).CombinedOutput()
	require.NoError(s.T, err, "CLI command failed: git-pro %v\nOutput: %s", args, string(output))
	return s
}

// RunCliAndGetOutput executes a git-pro CLI command and returns its output.
func (s *Scenario) RunCliAndGetOutput(args ...string) (string, error) {
	if s.BinaryPath == "" {
		return "", fmt.Errorf("BinaryPath not set")
	}
	output, err := s.cliCommand(args...).CombinedOutput()
	return string(output), err
}

// RunCliSplitOutput executes a git-pro CLI command and returns stdout and stderr separately.
func (s *Scenario) RunCliSplitOutput(args ...string) (string, string, error) {
	if s.BinaryPath == "" {
		return "", "", fmt.Errorf("BinaryPath not set")
	}
	var stdout, stderr bytes.Buffer
	cmd := s.cliCommand(args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// RunExpectError executes a git-pro CLI command and expects it to fail.
func (s *Scenario) RunExpectError(args ...string) *Scenario {
	s.T.Helper()
	if s.BinaryPath == "" {
		s.T.Fatal("BinaryPath not set")
	}
	_, err := s.cliCommand(args...).CombinedOutput()
	require.Error(s.T, err, "expected CLI command to fail: git-pro %v", args)
	return s
}

// ExpectBranch asserts that the current branch is as expected.
func (s *Scenario) ExpectBranch(expected string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectCurrentBranch(s.T, s.Scene.Repo, expected)
	return s
}

// ExpectBranches asserts the full set of local branches.
func (s *Scenario) ExpectBranches(expected ...string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectBranches(s.T, s.Scene.Repo, expected)
	return s
}
