// Package git is the repository backend for git-pro.
//
// Every read and write goes through go-git, so the git binary is never executed.
// It covers:
//   - Commits (stage everything and commit, reword the last commit, log)
//   - Local branches (list, create, checkout, delete, rename)
//   - Repository state (in-progress merge, rebase, cherry-pick and friends)
//
// Errors are reported with the types in internal/errors.
package git
