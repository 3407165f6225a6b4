// Package review_test drives complete review rounds against real git
// repositories with a bare repository standing in for the remote.
package review_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lfu001/cresca/internal/core/config"
	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/review"
	"github.com/Lfu001/cresca/internal/cresca"
	"github.com/Lfu001/cresca/pkg/executil"
)

type repo struct {
	t    *testing.T
	dir  string
	exec *executil.RealExecutor
	app  *cresca.App
}

// newRepo creates a repository on main with one pushed commit.
func newRepo(t *testing.T) *repo {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	remote := t.TempDir()
	r := &repo{t: t, dir: t.TempDir(), exec: &executil.RealExecutor{}}

	r.gitIn(remote, "init", "--bare", "-b", "main")
	r.git("init", "-b", "main")
	r.git("config", "user.name", "Test User")
	r.git("config", "user.email", "test@example.com")
	r.git("config", "commit.gpgsign", "false")
	r.git("remote", "add", "origin", remote)
	r.commitFile("README.md", "# Test Repository", "Initial commit")
	r.git("push", "--quiet", "-u", "origin", "main")

	cfg := config.DefaultConfig()
	r.app = cresca.NewApp(&cfg, git.NewExecutor("git", r.exec).InDir(r.dir))

	return r
}

func (r *repo) gitIn(dir string, args ...string) string {
	r.t.Helper()

	out, err := r.exec.RunDir(context.Background(), dir, "git", args...)
	require.NoError(r.t, err)
	require.Truef(r.t, out.Success(), "git %s: %s", strings.Join(args, " "), out.StderrString())
	return out.StdoutString()
}

func (r *repo) git(args ...string) string {
	r.t.Helper()
	return r.gitIn(r.dir, args...)
}

func (r *repo) write(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0o644))
}

func (r *repo) commitFile(name, content, message string) string {
	r.t.Helper()

	r.write(name, content)
	r.git("add", name)
	r.git("commit", "--quiet", "-m", message)
	return r.git("rev-parse", "HEAD")
}

func (r *repo) exists(name string) bool {
	_, err := os.Stat(filepath.Join(r.dir, name))
	return err == nil
}

// status returns the porcelain status, empty when the tree is clean.
func (r *repo) status() string {
	return r.git("status", "--porcelain", "--untracked-files=all")
}

// develop creates develop from main with one commit per file, pushes it and
// switches back to main. It returns the commit ids in order.
func (r *repo) develop(files ...string) []string {
	r.t.Helper()

	r.git("switch", "--quiet", "-c", "develop")
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, r.commitFile(f, "content of "+f, "Add "+f))
	}
	r.git("push", "--quiet", "-u", "origin", "develop")
	r.git("switch", "--quiet", "main")
	return ids
}

func (r *repo) review(opts review.Options) review.Result {
	r.t.Helper()

	res, err := r.app.Review.Run(context.Background(), r.app.NewSession("main", "develop"), opts)
	require.NoError(r.t, err)
	return res
}

func (r *repo) approve() review.Approval {
	r.t.Helper()

	ctx := context.Background()
	sess, err := r.app.CurrentSession(ctx)
	require.NoError(r.t, err)

	approval, err := r.app.Approver.Approve(ctx, sess)
	require.NoError(r.t, err)
	return approval
}

func (r *repo) remaining() review.Status {
	r.t.Helper()

	ctx := context.Background()
	sess, err := r.app.CurrentSession(ctx)
	require.NoError(r.t, err)

	st, err := r.app.Status.Status(ctx, sess)
	require.NoError(r.t, err)
	return st
}

func TestReview_ShowsFullDiff(t *testing.T) {
	r := newRepo(t)
	r.develop("feature.txt", "lib/util.go")

	res := r.review(review.Options{})

	assert.Equal(t, "review-main-develop", r.git("rev-parse", "--abbrev-ref", "HEAD"))
	assert.Equal(t, review.StateDiffStaged, res.State)
	assert.True(t, res.Pending)
	assert.Equal(t, 2, res.Range.Len())

	st := r.status()
	assert.Contains(t, st, "?? feature.txt")
	assert.Contains(t, st, "?? lib/util.go")
	assert.Empty(t, r.git("diff", "--cached", "--name-only"), "nothing is staged after review")
}

func TestReview_NoDivergence(t *testing.T) {
	r := newRepo(t)
	r.develop()

	res := r.review(review.Options{})

	assert.False(t, res.Pending)
	assert.Zero(t, res.Range.Len())
	assert.Empty(t, r.status())
}

func TestReview_RefusesDirtyTree(t *testing.T) {
	r := newRepo(t)
	r.develop("feature.txt")
	r.write("uncommitted.txt", "dirty")

	_, err := r.app.Review.Run(context.Background(), r.app.NewSession("main", "develop"), review.Options{})

	var pre *review.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "main", r.git("rev-parse", "--abbrev-ref", "HEAD"))
}

func TestApprove_CommitsStagedAndDiscardsRest(t *testing.T) {
	r := newRepo(t)
	r.develop("reviewed.txt", "not_reviewed.txt")
	r.review(review.Options{})

	r.git("add", "reviewed.txt")
	approval := r.approve()

	assert.Equal(t, review.Approved, approval.Outcome)
	assert.Equal(t, []string{"reviewed.txt"}, approval.Files)
	assert.Contains(t, r.git("ls-tree", "--name-only", "HEAD"), "reviewed.txt")
	assert.Equal(t, review.ApproveMessage, r.git("log", "-1", "--format=%s"))
	assert.False(t, r.exists("not_reviewed.txt"))
	assert.Empty(t, r.status())
}

func TestApprove_NothingStaged(t *testing.T) {
	r := newRepo(t)
	r.develop("feature.txt")
	r.review(review.Options{})
	head := r.git("rev-parse", "HEAD")

	approval := r.approve()

	assert.Equal(t, review.NothingToApprove, approval.Outcome)
	assert.Equal(t, head, r.git("rev-parse", "HEAD"))
	assert.Empty(t, r.status())
}

func TestApprove_OutsideReviewBranch(t *testing.T) {
	r := newRepo(t)

	_, err := r.app.CurrentSession(context.Background())

	var pre *review.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Contains(t, pre.Error(), "main")
}

func TestReview_Idempotent(t *testing.T) {
	r := newRepo(t)
	r.develop("a.txt", "b.txt")

	r.review(review.Options{})
	r.git("add", "--all")
	r.approve()

	res := r.review(review.Options{})

	assert.False(t, res.Pending)
	assert.Empty(t, r.status())
	assert.True(t, r.remaining().Done())
}

func TestReview_UpdatesExistingBranch(t *testing.T) {
	r := newRepo(t)
	r.develop("file1.txt")

	r.review(review.Options{})
	r.git("add", "--all")
	r.approve()

	r.git("switch", "--quiet", "develop")
	r.commitFile("file2.txt", "content 2", "Add file2")
	r.git("push", "--quiet", "origin", "develop")
	r.git("switch", "--quiet", "review-main-develop")

	res := r.review(review.Options{})

	assert.True(t, res.Pending)
	assert.True(t, r.exists("file1.txt"))
	assert.Equal(t, "?? file2.txt", r.status())
}

func TestReview_SkipToAndStopAt(t *testing.T) {
	r := newRepo(t)
	ids := r.develop("f1.txt", "f2.txt", "f3.txt")

	t.Run("skip-to", func(t *testing.T) {
		res := r.review(review.Options{SkipTo: ids[1][:8]})

		assert.True(t, res.AutoApproved)
		assert.Equal(t, ids[1], res.Boundaries.SkipTo)
		assert.Equal(t, review.AutoApproveMessage, r.git("log", "-1", "--format=%s"))
		assert.True(t, r.exists("f1.txt"))

		st := r.status()
		assert.NotContains(t, st, "f1.txt")
		assert.Contains(t, st, "f2.txt")
		assert.Contains(t, st, "f3.txt")
	})

	t.Run("stop-at", func(t *testing.T) {
		r.approve()

		res := r.review(review.Options{SkipTo: ids[1], StopAt: ids[1]})

		assert.False(t, res.AutoApproved, "earlier commits are already approved")
		assert.Equal(t, "?? f2.txt", r.status())
	})
}

func TestReview_BoundaryOutsideRange(t *testing.T) {
	r := newRepo(t)
	r.develop("f1.txt")
	mainHead := r.git("rev-parse", "main")

	_, err := r.app.Review.Run(context.Background(), r.app.NewSession("main", "develop"), review.Options{StopAt: mainHead})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop-at")
}

func TestStatus_CountsShrinkWithApprovals(t *testing.T) {
	r := newRepo(t)
	r.develop("a.txt", "b.txt", "c.txt")
	r.review(review.Options{})

	before := r.remaining()
	assert.Equal(t, 3, before.FileCount)
	assert.Equal(t, 3, before.Insertions)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, before.Files)

	r.git("add", "b.txt")
	r.approve()

	after := r.remaining()
	assert.Equal(t, 2, after.FileCount)
	assert.Equal(t, before.Insertions-1, after.Insertions)
	assert.Equal(t, []string{"a.txt", "c.txt"}, after.Files)
}
