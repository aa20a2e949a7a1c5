// Package actions provides the behaviour behind each git-pro command.
//
// Each action corresponds to a command (commit, log, branch new, ...) and
// orchestrates calls into the git package, reporting progress through Splog.
//
// Key patterns:
//   - Actions accept runtime.Context, which provides Repo, Splog, Config and Confirmer
//   - Actions return the domain result (commit info, branch names) so callers and tests
//     can inspect it without parsing output
package actions
