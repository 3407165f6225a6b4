package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/session"
	"github.com/Lfu001/cresca/pkg/executil"
)

func TestApprover_Approve(t *testing.T) {
	sess := session.New(session.DefaultPrefix, "main", "develop")

	tests := []struct {
		name    string
		staged  string
		outcome ApprovalOutcome
		files   []string
		want    []string
	}{
		{
			name:    "staged changes are committed",
			staged:  "file1\ndir/file2\n",
			outcome: Approved,
			files:   []string{"file1", "dir/file2"},
			want: []string{
				"git diff --cached --name-only",
				"git commit --quiet -m " + ApproveMessage,
				"git restore --source=HEAD --worktree -- :/",
				"git clean -fd --quiet -- :/",
			},
		},
		{
			name:    "nothing staged still discards the rest",
			staged:  "",
			outcome: NothingToApprove,
			want: []string{
				"git diff --cached --name-only",
				"git restore --source=HEAD --worktree -- :/",
				"git clean -fd --quiet -- :/",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &executil.RecordingExecutor{
				Outputs: map[string]executil.Output{
					"git diff --cached --name-only": out(tt.staged),
				},
			}

			got, err := NewApprover(git.NewExecutor("git", rec)).Approve(context.Background(), sess)
			require.NoError(t, err)

			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.files, got.Files)
			assert.Equal(t, tt.want, rec.Lines())
		})
	}
}

func TestApprover_Approve_CommitFails(t *testing.T) {
	rec := &executil.RecordingExecutor{
		Outputs: map[string]executil.Output{
			"git diff --cached --name-only":           out("file1\n"),
			"git commit --quiet -m " + ApproveMessage:     {Stderr: []byte("error: gpg failed\n"), ExitCode: 1},
		},
	}

	sess := session.New(session.DefaultPrefix, "main", "develop")
	_, err := NewApprover(git.NewExecutor("git", rec)).Approve(context.Background(), sess)
	require.Error(t, err)

	assert.NotContains(t, rec.Lines(), "git restore --source=HEAD --worktree -- :/",
		"unreviewed changes must survive a failed commit")
}

func TestApprover_Discardable(t *testing.T) {
	rec := &executil.RecordingExecutor{
		Outputs: map[string]executil.Output{
			"git status --porcelain --untracked-files=all": out("M  staged.go\n M edited.go\n?? new.go\n"),
		},
	}

	got, err := NewApprover(git.NewExecutor("git", rec)).Discardable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"edited.go", "new.go"}, got)
}

func TestApprovalOutcome_String(t *testing.T) {
	assert.Equal(t, "approved", Approved.String())
	assert.Equal(t, "nothing-to-approve", NothingToApprove.String())
}
