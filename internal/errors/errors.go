// Package errors provides sentinel errors and custom error types for the git-pro application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrDirtyState indicates that a merge, rebase, cherry-pick or similar operation is in progress,
	// or that uncommitted changes would be overwritten
	ErrDirtyState = errors.New("repository is not in a clean state")

	// ErrNothingToCommit indicates that the working tree has no changes
	ErrNothingToCommit = errors.New("nothing to commit, working tree clean")

	// ErrNoCommits indicates that HEAD does not point at a commit yet
	ErrNoCommits = errors.New("no commits found")

	// ErrBranchExists indicates that a branch with the requested name already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInvalidBase indicates that a base reference does not resolve to a commit
	ErrInvalidBase = errors.New("invalid base reference")

	// ErrInvalidPattern indicates that a branch pattern is not a valid regular expression
	ErrInvalidPattern = errors.New("invalid branch pattern")

	// ErrBackend indicates a failure reported by the git backend
	ErrBackend = errors.New("git backend error")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch '%s' does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchExistsError represents an error when a branch name is already taken
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("a branch named '%s' already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// InvalidBaseError represents a base reference that could not be resolved to a commit
type InvalidBaseError struct {
	Base string
	Err  error
}

func (e *InvalidBaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("base '%s' is not a valid commit: %v", e.Base, e.Err)
	}
	return fmt.Sprintf("base '%s' is not a valid commit", e.Base)
}

// Is returns true if the target error is ErrInvalidBase
func (e *InvalidBaseError) Is(target error) bool {
	return target == ErrInvalidBase
}

func (e *InvalidBaseError) Unwrap() error {
	return e.Err
}

// NewInvalidBaseError creates a new InvalidBaseError
func NewInvalidBaseError(base string, err error) *InvalidBaseError {
	return &InvalidBaseError{Base: base, Err: err}
}

// InvalidPatternError represents a branch pattern that failed to compile
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern '%s': %v", e.Pattern, e.Err)
}

// Is returns true if the target error is ErrInvalidPattern
func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// NewInvalidPatternError creates a new InvalidPatternError
func NewInvalidPatternError(pattern string, err error) *InvalidPatternError {
	return &InvalidPatternError{Pattern: pattern, Err: err}
}

// DirtyStateError represents a repository with an operation in progress or
// uncommitted changes in the way
type DirtyStateError struct {
	State  string
	Reason string
}

func (e *DirtyStateError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("repository is not in a clean state: %s", e.Reason)
	case e.State != "":
		return fmt.Sprintf("repository is not in a clean state (%s in progress)", e.State)
	default:
		return ErrDirtyState.Error()
	}
}

// Is returns true if the target error is ErrDirtyState
func (e *DirtyStateError) Is(target error) bool {
	return target == ErrDirtyState
}

// NewDirtyStateError creates a DirtyStateError for an in-progress operation
func NewDirtyStateError(state string) *DirtyStateError {
	return &DirtyStateError{State: state}
}

// NewUncommittedChangesError creates a DirtyStateError for changes that a checkout would overwrite
func NewUncommittedChangesError() *DirtyStateError {
	return &DirtyStateError{Reason: "uncommitted changes would be overwritten by checkout"}
}

// BackendError wraps any failure surfaced by the git backend
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("git error: %s", e.Op)
	}
	return fmt.Sprintf("git error: %s: %v", e.Op, e.Err)
}

// Is returns true if the target error is ErrBackend
func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a new BackendError
func NewBackendError(op string, err error) *BackendError {
	return &BackendError{Op: op, Err: err}
}

// BatchDeleteError reports a pattern deletion that stopped partway through
type BatchDeleteError struct {
	Deleted []string
	Failed  string
	Err     error
}

func (e *BatchDeleteError) Error() string {
	msg := fmt.Sprintf("failed to delete branch '%s': %v", e.Failed, e.Err)
	if len(e.Deleted) > 0 {
		msg += fmt.Sprintf(" (already deleted: %s)", strings.Join(e.Deleted, ", "))
	}
	return msg
}

func (e *BatchDeleteError) Unwrap() error {
	return e.Err
}

// NewBatchDeleteError creates a new BatchDeleteError
func NewBatchDeleteError(deleted []string, failed string, err error) *BatchDeleteError {
	return &BatchDeleteError{Deleted: deleted, Failed: failed, Err: err}
}
