package git

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lfu001/cresca/internal/core/logging"
	"github.com/Lfu001/cresca/pkg/executil"
)

// Echo receives every git invocation when verbose output is enabled.
type Echo interface {
	Command(args []string)
	Output(stdout string)
}

// Result is the captured outcome of a single git invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether git exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Lines splits stdout into non-empty trimmed lines, preserving order.
func (r Result) Lines() []string {
	var lines []string
	for _, line := range strings.Split(r.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Executor implements Git using the git command-line tool.
type Executor struct {
	gitPath string
	dir     string
	exec    executil.Executor
	echo    Echo
	log     zerolog.Logger
}

var _ Git = (*Executor)(nil)

// NewExecutor creates a new git executor with the specified git binary path.
// Commands run in the process working directory.
func NewExecutor(gitPath string, exec executil.Executor) *Executor {
	return &Executor{
		gitPath: gitPath,
		exec:    exec,
		log:     logging.Component("git"),
	}
}

// InDir returns a copy of the executor that runs git in dir.
func (e *Executor) InDir(dir string) *Executor {
	cp := *e
	cp.dir = dir
	return &cp
}

// WithEcho returns a copy of the executor that reports every invocation to echo.
func (e *Executor) WithEcho(echo Echo) *Executor {
	cp := *e
	cp.echo = echo
	return &cp
}

// run executes one git operation. op describes the operation for
// diagnostics ("switch to main branch"). Unless mayFail is set, a non-zero
// exit is returned as a *CommandError.
func (e *Executor) run(ctx context.Context, op string, mayFail bool, args ...string) (Result, error) {
	if e.echo != nil {
		e.echo.Command(args)
	}

	start := time.Now()
	out, err := e.exec.RunDir(ctx, e.dir, e.gitPath, args...)
	if err != nil {
		e.log.Error().Ctx(ctx).Err(err).Str("op", op).Strs("args", args).Msg("git invocation failed")
		return Result{}, &InvocationError{Op: op, Args: args, Err: err}
	}

	res := Result{
		Stdout:   string(out.Stdout),
		Stderr:   string(out.Stderr),
		ExitCode: out.ExitCode,
	}

	e.log.Debug().Ctx(ctx).
		Str("op", op).
		Strs("args", args).
		Int("exit", res.ExitCode).
		Dur("took", time.Since(start)).
		Msg("git")

	if res.Success() && e.echo != nil && strings.TrimSpace(res.Stdout) != "" {
		e.echo.Output(res.Stdout)
	}

	if !res.Success() && !mayFail {
		return res, &CommandError{
			Op:       op,
			Args:     args,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}

	return res, nil
}

func (e *Executor) Switch(ctx context.Context, branch string) error {
	_, err := e.run(ctx, "switch to "+branch+" branch", false, "switch", branch)
	return err
}

func (e *Executor) CreateBranch(ctx context.Context, branch, startPoint string) error {
	_, err := e.run(ctx, "create "+branch+" branch", false, "switch", "-c", branch, startPoint)
	return err
}

func (e *Executor) Pull(ctx context.Context, remote, branch string) error {
	_, err := e.run(ctx, "pull "+branch+" branch", false, "pull", "--quiet", remote, branch)
	return err
}

func (e *Executor) MergeBase(ctx context.Context, a, b string) (string, error) {
	res, err := e.run(ctx, "get merge base", false, "merge-base", a, b)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (e *Executor) RevList(ctx context.Context, from, to string) ([]string, error) {
	res, err := e.run(ctx, "list commits in "+from+".."+to, false, "rev-list", from+".."+to)
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

func (e *Executor) HasCommits(ctx context.Context, from, to string) (bool, error) {
	res, err := e.run(ctx, "check commits in "+from+".."+to, true, "rev-list", from+".."+to)
	if err != nil {
		return false, err
	}
	return res.Success() && len(res.Lines()) > 0, nil
}

func (e *Executor) BranchExists(ctx context.Context, branch string) (bool, error) {
	res, err := e.run(ctx, "check existence of "+branch+" branch", true,
		"show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		return false, err
	}
	return res.Success(), nil
}

func (e *Executor) ListBranches(ctx context.Context) ([]string, error) {
	res, err := e.run(ctx, "list branches", false, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

func (e *Executor) SquashMerge(ctx context.Context, ref string, policy ConflictPolicy) error {
	args := []string{"merge", "--squash", "--quiet", "--no-stat"}
	args = append(args, policy.mergeArgs()...)
	args = append(args, ref)

	_, err := e.run(ctx, "squash merge "+ref, false, args...)
	return err
}

func (e *Executor) Commit(ctx context.Context, message string) error {
	_, err := e.run(ctx, "commit changes", false, "commit", "--quiet", "-m", message)
	return err
}

func (e *Executor) ResetIndex(ctx context.Context) error {
	_, err := e.run(ctx, "unstage changes", false, "reset", "--quiet")
	return err
}

func (e *Executor) IsClean(ctx context.Context) (bool, error) {
	res, err := e.run(ctx, "check working directory status", false, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(res.Stdout) == "", nil
}

func (e *Executor) WorktreeChanges(ctx context.Context) ([]string, error) {
	res, err := e.run(ctx, "check unstaged changes", false, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return nil, err
	}
	return parseWorktreeChanges(res.Stdout), nil
}

// parseWorktreeChanges picks the entries of git status --porcelain whose
// worktree column is set. Lines look like "XY path"; "??" marks untracked.
func parseWorktreeChanges(porcelain string) []string {
	var paths []string
	for _, line := range strings.Split(porcelain, "\n") {
		if len(line) < 4 {
			continue
		}
		if line[1] == ' ' && line[:2] != "??" {
			continue
		}
		path := line[3:]
		if _, to, ok := strings.Cut(path, " -> "); ok {
			path = to
		}
		paths = append(paths, path)
	}
	return paths
}

func (e *Executor) CurrentBranch(ctx context.Context) (string, error) {
	res, err := e.run(ctx, "get current branch", false, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (e *Executor) RestoreWorktree(ctx context.Context) error {
	_, err := e.run(ctx, "discard unreviewed changes", false,
		"restore", "--source=HEAD", "--worktree", "--", ":/")
	return err
}

func (e *Executor) CleanUntracked(ctx context.Context) error {
	_, err := e.run(ctx, "discard untracked files", false, "clean", "-fd", "--quiet", "--", ":/")
	return err
}

func (e *Executor) InsideWorkTree(ctx context.Context) (bool, error) {
	res, err := e.run(ctx, "check work tree", true, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, err
	}
	return res.Success() && strings.TrimSpace(res.Stdout) == "true", nil
}

func (e *Executor) RemoteExists(ctx context.Context, remote string) (bool, error) {
	res, err := e.run(ctx, "check remote "+remote, true, "remote", "get-url", remote)
	if err != nil {
		return false, err
	}
	return res.Success(), nil
}

func (e *Executor) Version(ctx context.Context) (string, error) {
	res, err := e.run(ctx, "get git version", false, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}
