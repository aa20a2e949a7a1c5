package actions

import (
	"fmt"
	"regexp"

	"gitpro.dev/gitpro/internal/config"
	gperrors "gitpro.dev/gitpro/internal/errors"
	"gitpro.dev/gitpro/internal/runtime"
	"gitpro.dev/gitpro/internal/tui"
	"gitpro.dev/gitpro/internal/tui/style"
)

// DeletePatternOptions contains options for deleting branches by pattern
type DeletePatternOptions struct {
	Pattern string
	// Force skips the confirmation prompt
	Force bool
}

// CompileBranchPattern compiles a branch pattern for the given match mode.
// In full mode the pattern must match the entire branch name.
func CompileBranchPattern(pattern string, mode config.MatchMode) (*regexp.Regexp, error) {
	// The raw pattern must compile on its own so it cannot break out of the anchoring group
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, gperrors.NewInvalidPatternError(pattern, err)
	}
	if mode == config.MatchSubstring {
		return re, nil
	}
	re, err = regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, gperrors.NewInvalidPatternError(pattern, err)
	}
	return re, nil
}

// MatchBranches returns the names matching re, in input order, leaving out exclude
func MatchBranches(names []string, re *regexp.Regexp, exclude string) []string {
	var matches []string
	for _, name := range names {
		if name == exclude {
			continue
		}
		if re.MatchString(name) {
			matches = append(matches, name)
		}
	}
	return matches
}

// DeleteBranchesByPatternAction deletes every local branch matching the pattern
// except the checked-out one. It returns the names actually deleted.
// Deletion stops at the first failure; the error then lists what was already removed.
func DeleteBranchesByPatternAction(ctx *runtime.Context, opts DeletePatternOptions) ([]string, error) {
	re, err := CompileBranchPattern(opts.Pattern, ctx.Config.Branch.PatternMatch)
	if err != nil {
		return nil, err
	}

	names, err := ctx.Repo.GetBranchNames()
	if err != nil {
		return nil, err
	}
	current, err := ctx.Repo.GetCurrentBranch()
	if err != nil {
		return nil, err
	}

	candidates := MatchBranches(names, re, current)
	if len(candidates) == 0 {
		ctx.Splog.Info("%s", style.ColorDim(fmt.Sprintf("No branches match pattern '%s'", opts.Pattern)))
		return []string{}, nil
	}

	if !opts.Force {
		if ctx.Confirmer == nil {
			return nil, fmt.Errorf("confirmation required; use --force to delete without prompting")
		}
		ok, err := ctx.Confirmer.Confirm(confirmPrompt(len(candidates)), candidates)
		if err != nil {
			return nil, fmt.Errorf("confirmation required; use --force to delete without prompting: %w", err)
		}
		if !ok {
			ctx.Splog.Info("%s", style.ColorDim("Aborted, no branches deleted"))
			return []string{}, nil
		}
	}

	return deleteBranches(ctx.Splog, ctx.Repo, candidates)
}

// branchDeleter is the part of the repository a batch deletion needs
type branchDeleter interface {
	DeleteBranch(name string) error
}

// deleteBranches deletes names in order and stops at the first failure
func deleteBranches(splog *tui.Splog, repo branchDeleter, names []string) ([]string, error) {
	deleted := make([]string, 0, len(names))
	for _, name := range names {
		if err := repo.DeleteBranch(name); err != nil {
			if len(deleted) > 0 {
				splog.Warn("stopped at '%s' after deleting %d of %d branches", name, len(deleted), len(names))
			}
			return deleted, gperrors.NewBatchDeleteError(append([]string(nil), deleted...), name, err)
		}
		deleted = append(deleted, name)
		splog.Info("Deleted branch '%s'", name)
	}
	return deleted, nil
}

func confirmPrompt(n int) string {
	if n == 1 {
		return "Delete 1 branch?"
	}
	return fmt.Sprintf("Delete %d branches?", n)
}
