package executil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_RunDir(t *testing.T) {
	exec := &RealExecutor{}
	ctx := context.Background()

	t.Run("successful command", func(t *testing.T) {
		out, err := exec.RunDir(ctx, "", "echo", "hello")
		require.NoError(t, err)
		assert.True(t, out.Success())
		assert.Equal(t, "hello\n", string(out.Stdout))
		assert.Equal(t, "hello", out.StdoutString())
	})

	t.Run("command not found", func(t *testing.T) {
		_, err := exec.RunDir(ctx, "", "nonexistent-command-12345")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exec nonexistent-command-12345")
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		out, err := exec.RunDir(ctx, "", "sh", "-c", "echo oops >&2; exit 3")
		require.NoError(t, err)
		assert.False(t, out.Success())
		assert.Equal(t, 3, out.ExitCode)
		assert.Equal(t, "oops", out.StderrString())
		assert.Empty(t, out.Stdout)
	})

	t.Run("stdout and stderr are separated", func(t *testing.T) {
		out, err := exec.RunDir(ctx, "", "sh", "-c", "echo out; echo err >&2")
		require.NoError(t, err)
		assert.Equal(t, "out", out.StdoutString())
		assert.Equal(t, "err", out.StderrString())
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		out, err := exec.RunDir(ctx, dir, "pwd")
		require.NoError(t, err)
		assert.Contains(t, out.StdoutString(), dir)
	})

	t.Run("invalid directory", func(t *testing.T) {
		_, err := exec.RunDir(ctx, "/nonexistent-dir-12345", "pwd")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/nonexistent-dir-12345")
	})
}

func TestRecordingExecutor_RunDir(t *testing.T) {
	ctx := context.Background()

	t.Run("records commands", func(t *testing.T) {
		exec := &RecordingExecutor{}

		_, _ = exec.RunDir(ctx, "", "git", "switch", "main")
		_, _ = exec.RunDir(ctx, "/tmp/repo", "git", "status", "--porcelain")

		require.Len(t, exec.Commands, 2)
		assert.Equal(t, "git", exec.Commands[0].Cmd)
		assert.Equal(t, []string{"switch", "main"}, exec.Commands[0].Args)
		assert.Empty(t, exec.Commands[0].Dir)
		assert.Equal(t, "/tmp/repo", exec.Commands[1].Dir)
		assert.Equal(t, []string{"git switch main", "git status --porcelain"}, exec.Lines())
	})

	t.Run("full line output wins over command name", func(t *testing.T) {
		exec := &RecordingExecutor{
			Outputs: map[string]Output{
				"git":                      {Stdout: []byte("generic")},
				"git merge-base main topic": {Stdout: []byte("abc123\n")},
			},
		}

		out, err := exec.RunDir(ctx, "", "git", "merge-base", "main", "topic")
		require.NoError(t, err)
		assert.Equal(t, "abc123", out.StdoutString())

		out, err = exec.RunDir(ctx, "", "git", "status")
		require.NoError(t, err)
		assert.Equal(t, "generic", out.StdoutString())
	})

	t.Run("returns configured error", func(t *testing.T) {
		expectedErr := errors.New("command failed")
		exec := &RecordingExecutor{
			Errors: map[string]error{
				"git": expectedErr,
			},
		}

		_, err := exec.RunDir(ctx, "", "git", "status")
		assert.Equal(t, expectedErr, err)
	})

	t.Run("reset clears commands", func(t *testing.T) {
		exec := &RecordingExecutor{}

		_, _ = exec.RunDir(ctx, "", "echo", "hello")
		require.Len(t, exec.Commands, 1)

		exec.Reset()
		assert.Empty(t, exec.Commands)
	})
}
