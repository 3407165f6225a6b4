package cresca

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lfu001/cresca/internal/core/config"
	"github.com/Lfu001/cresca/internal/core/doctor"
	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/review"
	"github.com/Lfu001/cresca/pkg/executil"
)

func newTestApp(rec *executil.RecordingExecutor) *App {
	cfg := config.DefaultConfig()
	return NewApp(&cfg, git.NewExecutor("git", rec))
}

func branchOutput(name string) map[string]executil.Output {
	return map[string]executil.Output{
		"git rev-parse --abbrev-ref HEAD": {Stdout: []byte(name + "\n")},
	}
}

func TestApp_CurrentSession(t *testing.T) {
	app := newTestApp(&executil.RecordingExecutor{Outputs: branchOutput("review-release--1.0-feature-x")})

	sess, err := app.CurrentSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "release-1.0", sess.Target)
	assert.Equal(t, "feature-x", sess.Source)
	assert.Equal(t, "review-release--1.0-feature-x", sess.Branch)
}

func TestApp_CurrentSession_NotOnReviewBranch(t *testing.T) {
	app := newTestApp(&executil.RecordingExecutor{Outputs: branchOutput("main")})

	_, err := app.CurrentSession(context.Background())

	var pre *review.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Contains(t, pre.Reason, "main")
	assert.Contains(t, pre.Hint, "cresca review")
}

func TestApp_NewSession_UsesConfiguredPrefix(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BranchPrefix = "cr/"
	app := NewApp(&cfg, git.NewExecutor("git", &executil.RecordingExecutor{}))

	assert.Equal(t, "cr/main-develop", app.NewSession("main", "develop").Branch)
}

func TestDoctorService_OutsideWorkTree(t *testing.T) {
	rec := &executil.RecordingExecutor{
		Outputs: map[string]executil.Output{
			"git rev-parse --is-inside-work-tree": {ExitCode: 128},
		},
	}
	app := newTestApp(rec)

	results := app.Doctor.RunChecks(context.Background(), "")

	var names []string
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Configuration", "Tools", "Repository"}, names)

	repo := results[2]
	require.Len(t, repo.Items, 1)
	assert.Equal(t, doctor.StatusFail, repo.Items[0].Status)
}
