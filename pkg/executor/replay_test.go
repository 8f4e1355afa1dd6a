package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayExecutor_ReturnsResultsInOrder(t *testing.T) {
	e := NewReplayExecutor("a", "b")
	ctx := context.Background()

	// Results are matched purely by arrival order; the command text is
	// irrelevant.
	first, err := e.Run(ctx, "whatever", "args")
	require.NoError(t, err)
	second, err := e.Shell(ctx, "completely different")
	require.NoError(t, err)

	assert.Equal(t, "a", first)
	assert.Equal(t, "b", second)
	assert.Equal(t, 0, e.Remaining())
}

func TestReplayExecutor_ExhaustedReturnsEmpty(t *testing.T) {
	e := NewReplayExecutor("only")
	ctx := context.Background()

	_, err := e.Run(ctx, "first")
	require.NoError(t, err)

	out, err := e.Run(ctx, "second")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 2, e.Log.Len(), "calls past exhaustion are still logged")
}

func TestStrictReplayExecutor_ExhaustedFails(t *testing.T) {
	e := NewStrictReplayExecutor("only")
	ctx := context.Background()

	_, err := e.Run(ctx, "first")
	require.NoError(t, err)

	_, err = e.Run(ctx, "second")
	require.Error(t, err)
	cmdErr, ok := AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Output, "no queued results remain")

	// Every subsequent call keeps failing without consuming anything.
	_, err = e.Shell(ctx, "third")
	require.Error(t, err)
}

func TestReplayExecutor_LogsNormalizedInvocations(t *testing.T) {
	e := NewReplayExecutor("x", "y", "z")
	ctx := context.Background()

	_, _ = e.Run(ctx, "git", "status")
	_, _ = e.Run(ctx, "ls")
	_, _ = e.Shell(ctx, "echo hi | cat")

	assert.True(t, e.Log.EqualAt(0, "git status"))
	assert.True(t, e.Log.EqualAt(1, "ls"), "no trailing separator without arguments")
	assert.True(t, e.Log.EqualAt(2, "echo hi | cat"), "shell calls log the literal line")
}

func TestReplayExecutor_StreamingVariantsConsumeQueue(t *testing.T) {
	e := NewStrictReplayExecutor("a", "b")
	ctx := context.Background()

	require.NoError(t, e.RunStream(ctx, "prog"))
	require.NoError(t, e.ShellStream(ctx, "line"))
	require.Error(t, e.RunStream(ctx, "prog"))
}

func TestReplayExecutor_Reset(t *testing.T) {
	e := NewStrictReplayExecutor("a")
	ctx := context.Background()

	_, _ = e.Run(ctx, "one")
	_, err := e.Run(ctx, "two")
	require.Error(t, err)

	e.Reset("fresh")

	assert.True(t, e.Log.IsEmpty())
	out, err := e.Run(ctx, "three")
	require.NoError(t, err)
	assert.Equal(t, "fresh", out)

	// Strictness survives the reset.
	_, err = e.Run(ctx, "four")
	require.Error(t, err)
}
