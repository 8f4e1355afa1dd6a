package executor

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"cosmossdk.io/log"
)

// Expectation pairs an exact command string with the outcome a
// FakeExecutor produces when the command is matched.
type Expectation struct {
	// Command is the full normalized invocation text, compared
	// byte-for-byte against incoming calls.
	Command string

	// Output is returned on match when Err is nil.
	Output string

	// Err, when set, is returned on match instead of Output.
	Err *CommandError
}

// Expect builds a successful expectation.
func Expect(command, output string) Expectation {
	return Expectation{Command: command, Output: output}
}

// ExpectFailure builds an expectation that fails with a generated
// CommandError from the given exit code and output text.
func ExpectFailure(command string, exitCode int, output string) Expectation {
	return Expectation{
		Command: command,
		Err:     &CommandError{Command: command, ExitCode: exitCode, Output: output},
	}
}

// ExpectError builds an expectation that fails with a specific error.
func ExpectError(command string, err *CommandError) Expectation {
	return Expectation{Command: command, Err: err}
}

func (x Expectation) outcome() (string, error) {
	if x.Err != nil {
		return "", x.Err
	}
	return x.Output, nil
}

// matchMode selects the command-matching discipline, fixed at
// construction.
type matchMode int

const (
	// matchOrdered requires calls in an exact pre-declared sequence.
	matchOrdered matchMode = iota
	// matchMapped allows calls in any order, matched by exact text and
	// reusable across calls.
	matchMapped
)

// FakeExecutor is a mock backend holding command expectations. In ordered
// mode every call must match the next expectation exactly or the call
// fails; in mapped mode calls are looked up by exact text, an unmatched
// call returning an empty string and a diagnostic log line rather than an
// error. The asymmetry is deliberate: ordered mode asserts a protocol,
// mapped mode keeps incremental test-writing low-friction.
//
// Protocol violations (wrong command, too many commands) are reported as
// *CommandError values distinguishable from configured failures only by
// their Output text.
type FakeExecutor struct {
	// Log records every invocation, matched or not.
	Log CallLog

	mode   matchMode
	seq    []Expectation
	cursor int
	byCmd  map[string]Expectation
	logger log.Logger
}

// NewOrderedFakeExecutor creates a fake requiring calls to arrive in
// exactly the given order.
func NewOrderedFakeExecutor(exps ...Expectation) *FakeExecutor {
	return &FakeExecutor{
		mode:   matchOrdered,
		seq:    slices.Clone(exps),
		logger: log.NewNopLogger(),
	}
}

// NewMappedFakeExecutor creates a fake matching calls by exact text in
// any order. Expectations may be matched repeatedly.
func NewMappedFakeExecutor(exps ...Expectation) *FakeExecutor {
	return &FakeExecutor{
		mode:   matchMapped,
		byCmd:  indexExpectations(exps),
		logger: log.NewNopLogger(),
	}
}

// WithLogger sets the logger used for mapped-mode miss diagnostics.
func (e *FakeExecutor) WithLogger(logger log.Logger) *FakeExecutor {
	e.logger = logger
	return e
}

func indexExpectations(exps []Expectation) map[string]Expectation {
	byCmd := make(map[string]Expectation, len(exps))
	for _, x := range exps {
		byCmd[x.Command] = x
	}
	return byCmd
}

func (e *FakeExecutor) resolve(command string) (string, error) {
	e.Log.Append(command)

	if e.mode == matchMapped {
		x, ok := e.byCmd[command]
		if !ok {
			e.logger.Info("no expectation matched", "command", command)
			return "", nil
		}
		return x.outcome()
	}

	if e.cursor >= len(e.seq) {
		return "", &CommandError{
			Command:  command,
			ExitCode: 1,
			Output:   fmt.Sprintf("no more commands expected, got %q", command),
		}
	}
	want := e.seq[e.cursor]
	if command != want.Command {
		return "", &CommandError{
			Command:  command,
			ExitCode: 1,
			Output:   fmt.Sprintf("unexpected command: want %q, got %q", want.Command, command),
		}
	}
	e.cursor++
	return want.outcome()
}

// Run matches the normalized invocation against the expectations.
func (e *FakeExecutor) Run(_ context.Context, name string, args ...string) (string, error) {
	return e.resolve(FormatCommand(name, args))
}

// Shell matches the literal command line against the expectations.
func (e *FakeExecutor) Shell(_ context.Context, command string) (string, error) {
	return e.resolve(command)
}

// RunStream matches like Run and discards the configured output.
func (e *FakeExecutor) RunStream(_ context.Context, name string, args ...string) error {
	_, err := e.resolve(FormatCommand(name, args))
	return err
}

// ShellStream matches like Shell and discards the configured output.
func (e *FakeExecutor) ShellStream(_ context.Context, command string) error {
	_, err := e.resolve(command)
	return err
}

// Done reports whether the full expected sequence has been consumed.
// Mapped mode has no notion of exhaustion, so it is always done.
func (e *FakeExecutor) Done() bool {
	if e.mode == matchMapped {
		return true
	}
	return e.cursor >= len(e.seq)
}

// Remaining returns how many ordered expectations are still unconsumed;
// zero in mapped mode.
func (e *FakeExecutor) Remaining() int {
	if e.mode == matchMapped {
		return 0
	}
	return len(e.seq) - e.cursor
}

// Reset replaces the expectations, rewinds the cursor and clears the log.
// The matching mode is fixed at construction.
func (e *FakeExecutor) Reset(exps ...Expectation) {
	if e.mode == matchMapped {
		e.byCmd = indexExpectations(exps)
	} else {
		e.seq = slices.Clone(exps)
		e.cursor = 0
	}
	e.Log.Reset()
}

// Expectations returns the configured expectations. In mapped mode the
// order is unspecified.
func (e *FakeExecutor) Expectations() []Expectation {
	if e.mode == matchMapped {
		return slices.Collect(maps.Values(e.byCmd))
	}
	return slices.Clone(e.seq)
}

var _ Executor = (*FakeExecutor)(nil)
