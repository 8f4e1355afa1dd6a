package executor

import (
	"errors"
	"fmt"
)

// CommandError is returned when a command ran and failed: non-zero exit,
// signal termination, timeout expiry, or a mock-configured failure. It is
// distinct from start failures (missing executable, permission denied),
// which are returned as the wrapped os/exec error and mean the command
// never ran at all.
type CommandError struct {
	// Command is the normalized invocation string of the failed call.
	Command string

	// ExitCode is the raw process exit code; -1 when the process was
	// terminated by a signal. Mock failures carry their configured code.
	ExitCode int

	// Output is the combined stdout/stderr text captured before the
	// failure, trimmed. It is never silently dropped and may be empty.
	Output string
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed with exit code %d: %s", e.Command, e.ExitCode, e.Output)
}

// AsCommandError unwraps err into a *CommandError, reporting whether the
// error represents a command that ran and failed rather than one that
// could not be started.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}
