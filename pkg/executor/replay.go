package executor

import (
	"context"
	"slices"
)

// exhaustedMessage is the diagnostic carried by strict replay failures.
const exhaustedMessage = "no queued results remain"

// ReplayExecutor is a mock backend that replays a fixed queue of results
// in call order, irrespective of the command text passed. It verifies
// sequencing, not content: callers who need their command strings checked
// should use FakeExecutor instead.
type ReplayExecutor struct {
	// Log records every invocation, including those past exhaustion.
	Log CallLog

	queue  []string
	strict bool
}

// NewReplayExecutor creates a replay mock that returns empty strings once
// its queue is exhausted.
func NewReplayExecutor(results ...string) *ReplayExecutor {
	return &ReplayExecutor{queue: slices.Clone(results)}
}

// NewStrictReplayExecutor creates a replay mock that fails every call
// made after the queue is exhausted.
func NewStrictReplayExecutor(results ...string) *ReplayExecutor {
	return &ReplayExecutor{queue: slices.Clone(results), strict: true}
}

func (e *ReplayExecutor) next(command string) (string, error) {
	e.Log.Append(command)
	if len(e.queue) == 0 {
		if e.strict {
			return "", &CommandError{Command: command, ExitCode: 1, Output: exhaustedMessage}
		}
		return "", nil
	}
	out := e.queue[0]
	e.queue = e.queue[1:]
	return out, nil
}

// Run pops and returns the next queued result.
func (e *ReplayExecutor) Run(_ context.Context, name string, args ...string) (string, error) {
	return e.next(FormatCommand(name, args))
}

// Shell pops and returns the next queued result.
func (e *ReplayExecutor) Shell(_ context.Context, command string) (string, error) {
	return e.next(command)
}

// RunStream pops the next queued result and discards it.
func (e *ReplayExecutor) RunStream(_ context.Context, name string, args ...string) error {
	_, err := e.next(FormatCommand(name, args))
	return err
}

// ShellStream pops the next queued result and discards it.
func (e *ReplayExecutor) ShellStream(_ context.Context, command string) error {
	_, err := e.next(command)
	return err
}

// Remaining returns how many queued results are left.
func (e *ReplayExecutor) Remaining() int {
	return len(e.queue)
}

// Reset re-seeds the queue and clears the log. Strictness is fixed at
// construction and survives Reset.
func (e *ReplayExecutor) Reset(results ...string) {
	e.queue = slices.Clone(results)
	e.Log.Reset()
}

var _ Executor = (*ReplayExecutor)(nil)
