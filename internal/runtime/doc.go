// Package runtime provides the execution context for git-pro commands.
//
// It encapsulates shared dependencies needed by actions,
// such as the repository handle, logger, settings and confirmation prompt.
package runtime
