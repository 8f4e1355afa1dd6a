// Package executor provides an abstraction for running external programs
// and shell command lines, with a production backend built on os/exec and
// two mock backends for unit-testing callers without spawning processes.
//
// Engines are not safe for concurrent use by multiple goroutines; each
// instance keeps unsynchronized state (result queues, cursors, call logs)
// and must be externally serialized if shared.
package executor

import (
	"context"
	"strings"
)

// DefaultShell is the shell binary used by Shell and ShellStream.
const DefaultShell = "/bin/sh"

// Executor abstracts command execution so callers can be tested against
// mock backends.
type Executor interface {
	// Run executes a program directly with the given arguments, without
	// shell interpretation, and returns combined stdout/stderr output
	// with leading and trailing whitespace trimmed.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// Shell executes a command line through the shell, equivalent to
	// Run(ctx, shell, "-c", command). Pipes, redirection, globbing and
	// variable expansion are handled by the shell binary itself.
	Shell(ctx context.Context, command string) (string, error)

	// RunStream is like Run but forwards output live to the engine's
	// configured stdout/stderr writers instead of capturing it.
	RunStream(ctx context.Context, name string, args ...string) error

	// ShellStream is the streaming equivalent of Shell.
	ShellStream(ctx context.Context, command string) error
}

// FormatCommand returns the normalized invocation string for a direct
// program call: the program path followed by space-joined arguments, with
// no trailing separator when there are no arguments. Whitespace embedded
// inside individual arguments is preserved verbatim.
func FormatCommand(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
