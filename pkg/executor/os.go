package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// killGracePeriod is how long a timed-out process gets to exit after
// SIGTERM before it is forcibly killed.
const killGracePeriod = 3 * time.Second

// OSExecutor executes real processes through os/exec. The zero timeout
// means captured calls wait indefinitely; streaming calls always wait
// indefinitely since their purpose is to show live, potentially
// long-running progress.
type OSExecutor struct {
	timeout time.Duration
	shell   string
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures an OSExecutor at construction time.
type Option func(*OSExecutor)

// WithTimeout bounds every captured call to d. When the deadline passes
// before the process exits, the process is terminated and the call fails
// with a CommandError carrying whatever output was captured so far.
func WithTimeout(d time.Duration) Option {
	return func(e *OSExecutor) { e.timeout = d }
}

// WithShell overrides the shell binary used by Shell and ShellStream.
func WithShell(path string) Option {
	return func(e *OSExecutor) { e.shell = path }
}

// WithStreams overrides the writers streaming calls forward output to.
// Defaults are os.Stdout and os.Stderr.
func WithStreams(stdout, stderr io.Writer) Option {
	return func(e *OSExecutor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewOSExecutor creates a production executor.
func NewOSExecutor(opts ...Option) *OSExecutor {
	e := &OSExecutor{
		shell:  DefaultShell,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes a program and returns its combined stdout/stderr output,
// trimmed. A non-zero exit yields a *CommandError; a process that could
// not be started yields the wrapped start error instead.
func (e *OSExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	var buf bytes.Buffer
	// Both streams share one buffer so the runtime merges them onto a
	// single pipe, drained concurrently while the process runs. Reading
	// each stream to completion independently can deadlock, and a
	// single post-exit read can lose bursty output larger than the OS
	// pipe buffer.
	err := e.execute(ctx, &buf, &buf, true, name, args)
	out := strings.TrimSpace(buf.String())
	if err != nil {
		return "", e.mapFailure(err, FormatCommand(name, args), out)
	}
	return out, nil
}

// Shell executes a command line as `<shell> -c <command>`. It adds no
// logic of its own; the shell binary handles all interpretation.
func (e *OSExecutor) Shell(ctx context.Context, command string) (string, error) {
	return e.Run(ctx, e.shell, "-c", command)
}

// RunStream executes a program with output forwarded live to the
// configured writers. The construction-time timeout does not apply.
func (e *OSExecutor) RunStream(ctx context.Context, name string, args ...string) error {
	err := e.execute(ctx, e.stdout, e.stderr, false, name, args)
	if err != nil {
		return e.mapFailure(err, FormatCommand(name, args), "")
	}
	return nil
}

// ShellStream is the streaming equivalent of Shell.
func (e *OSExecutor) ShellStream(ctx context.Context, command string) error {
	return e.RunStream(ctx, e.shell, "-c", command)
}

// execute starts the process and blocks until it exits. Start errors come
// back wrapped; Wait errors come back as-is for mapFailure to translate.
func (e *OSExecutor) execute(ctx context.Context, stdout, stderr io.Writer, bounded bool, name string, args []string) error {
	cancel := func() {}
	if bounded && e.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// Graceful termination first; WaitDelay force-kills stragglers.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = killGracePeriod

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return cmd.Wait()
}

// mapFailure translates a Wait error into a *CommandError and passes
// start failures through untouched so callers can tell "ran and failed"
// from "never ran".
func (e *OSExecutor) mapFailure(err error, command, output string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Command:  command,
			ExitCode: exitErr.ExitCode(),
			Output:   output,
		}
	}
	return err
}

var _ Executor = (*OSExecutor)(nil)
