// Package testhelpers provides shared test utilities for CLI packages.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// binaryPath is set by TestMain once the git-pro binary has been built
var binaryPath string

// BinaryPath returns the git-pro binary built by TestMain, or "" outside of it.
func BinaryPath() string {
	return binaryPath
}

// TestMain builds git-pro into a temp dir, runs the package's tests against it
// and removes the build afterwards.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "gitpro-test-binary-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create binary dir: %v\n", err)
		os.Exit(1)
	}

	path, err := buildGitPro(dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		fmt.Fprintf(os.Stderr, "build git-pro: %v\n", err)
		os.Exit(1)
	}
	binaryPath = path

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func buildGitPro(dir string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root := findModuleRoot(wd)
	if root == "" {
		return "", fmt.Errorf("no go.mod above %s", wd)
	}

	out := filepath.Join(dir, "git-pro")
	cmd := exec.Command("go", "build", "-o", out, "./cmd/git-pro")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%s: %w", output, err)
	}
	return out, nil
}

// findModuleRoot walks up from dir to the directory holding go.mod
func findModuleRoot(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
