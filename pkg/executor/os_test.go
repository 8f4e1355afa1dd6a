package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSExecutor_Run_TrimsOuterWhitespace(t *testing.T) {
	e := NewOSExecutor()

	out, err := e.Run(context.Background(), "printf", "  a b  \n")
	require.NoError(t, err)
	assert.Equal(t, "a b", out)
}

func TestOSExecutor_Run_PreservesInteriorWhitespace(t *testing.T) {
	e := NewOSExecutor()

	out, err := e.Shell(context.Background(), `printf 'first\n\n  indented\nlast\n'`)
	require.NoError(t, err)
	assert.Equal(t, "first\n\n  indented\nlast", out)
}

func TestOSExecutor_Run_MergesStdoutAndStderr(t *testing.T) {
	e := NewOSExecutor()

	out, err := e.Shell(context.Background(), "echo out1; echo err1 1>&2; echo out2; echo err2 1>&2")
	require.NoError(t, err)

	// Both streams share one descriptor, so ordering is preserved.
	assert.Equal(t, []string{"out1", "err1", "out2", "err2"}, strings.Split(out, "\n"))
}

func TestOSExecutor_Run_NoTruncationOnBurstyOutput(t *testing.T) {
	const n = 2000
	e := NewOSExecutor()

	script := fmt.Sprintf("i=0; while [ $i -lt %d ]; do echo line$i; i=$((i+1)); done", n)
	out, err := e.Shell(context.Background(), script)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, n)
	for i, line := range lines {
		if line != fmt.Sprintf("line%d", i) {
			t.Fatalf("line %d: got %q", i, line)
		}
	}
}

func TestOSExecutor_Run_NonZeroExitCarriesCodeAndOutput(t *testing.T) {
	e := NewOSExecutor()

	out, err := e.Shell(context.Background(), "echo before; echo oops 1>&2; exit 3")
	require.Error(t, err)
	assert.Empty(t, out)

	cmdErr, ok := AsCommandError(err)
	require.True(t, ok, "expected a command failure, got %v", err)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Output, "before")
	assert.Contains(t, cmdErr.Output, "oops")
}

func TestOSExecutor_Run_StartFailureIsNotACommandError(t *testing.T) {
	e := NewOSExecutor()

	_, err := e.Run(context.Background(), "/nonexistent/binary-for-test")
	require.Error(t, err)

	_, ok := AsCommandError(err)
	assert.False(t, ok, "start failures must stay separable from command failures")

	var execErr *exec.Error
	assert.True(t, errors.As(err, &execErr))
}

func TestOSExecutor_Run_Timeout(t *testing.T) {
	e := NewOSExecutor(WithTimeout(200 * time.Millisecond))

	start := time.Now()
	_, err := e.Shell(context.Background(), "echo started; sleep 30")
	elapsed := time.Since(start)

	require.Error(t, err)
	cmdErr, ok := AsCommandError(err)
	require.True(t, ok, "timeout must surface as a command failure, got %v", err)
	assert.NotZero(t, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Output, "started", "output captured before the timeout must be kept")
	assert.Less(t, elapsed, 5*time.Second)
}

func TestOSExecutor_Shell_DelegatesToRealShell(t *testing.T) {
	e := NewOSExecutor()

	// Pipes and chaining only work if an actual shell interprets the
	// command line.
	out, err := e.Shell(context.Background(), "echo hello | tr a-z A-Z && echo done")
	require.NoError(t, err)
	assert.Equal(t, "HELLO\ndone", out)
}

func TestOSExecutor_Shell_EquivalentToExplicitShellRun(t *testing.T) {
	e := NewOSExecutor()
	cmd := "echo a; echo b 1>&2; printf '  c  '"

	viaShell, errShell := e.Shell(context.Background(), cmd)
	viaRun, errRun := e.Run(context.Background(), DefaultShell, "-c", cmd)

	require.NoError(t, errShell)
	require.NoError(t, errRun)
	assert.Equal(t, viaRun, viaShell)
}

func TestOSExecutor_RunStream_ForwardsToConfiguredWriters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := NewOSExecutor(WithStreams(&stdout, &stderr))

	err := e.ShellStream(context.Background(), "echo to-out; echo to-err 1>&2")
	require.NoError(t, err)
	assert.Equal(t, "to-out\n", stdout.String())
	assert.Equal(t, "to-err\n", stderr.String())
}

func TestOSExecutor_RunStream_FailureCarriesExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := NewOSExecutor(WithStreams(&stdout, &stderr))

	err := e.RunStream(context.Background(), DefaultShell, "-c", "echo shown; exit 7")
	require.Error(t, err)

	cmdErr, ok := AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, 7, cmdErr.ExitCode)
	// Streaming output went to the writers, not into the error.
	assert.Equal(t, "shown\n", stdout.String())
}

func TestOSExecutor_RunStream_IgnoresConfiguredTimeout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := NewOSExecutor(WithTimeout(100*time.Millisecond), WithStreams(&stdout, &stderr))

	err := e.ShellStream(context.Background(), "sleep 0.3; echo finished")
	require.NoError(t, err)
	assert.Equal(t, "finished\n", stdout.String())
}

func TestOSExecutor_WithShell(t *testing.T) {
	e := NewOSExecutor(WithShell("/bin/sh"))

	out, err := e.Shell(context.Background(), "echo custom-shell")
	require.NoError(t, err)
	assert.Equal(t, "custom-shell", out)
}
