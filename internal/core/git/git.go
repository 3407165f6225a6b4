// Package git provides an abstraction for the git operations a review
// session needs. Every operation shells out to the git binary.
package git

import "context"

// Git defines git operations needed by cresca.
type Git interface {
	// Switch checks out an existing local branch.
	Switch(ctx context.Context, branch string) error
	// CreateBranch creates branch at startPoint and switches to it.
	CreateBranch(ctx context.Context, branch, startPoint string) error
	// Pull updates the current branch from branch on remote.
	Pull(ctx context.Context, remote, branch string) error
	// MergeBase returns the lowest common ancestor of a and b.
	MergeBase(ctx context.Context, a, b string) (string, error)
	// RevList returns the full ids reachable from to but not from from,
	// newest first.
	RevList(ctx context.Context, from, to string) ([]string, error)
	// HasCommits reports whether from..to is non-empty. A range git cannot
	// resolve counts as empty.
	HasCommits(ctx context.Context, from, to string) (bool, error)
	// BranchExists reports whether a local branch exists.
	BranchExists(ctx context.Context, branch string) (bool, error)
	// ListBranches returns every local branch name.
	ListBranches(ctx context.Context) ([]string, error)
	// SquashMerge merges ref into the index and working tree without
	// recording a merge commit.
	SquashMerge(ctx context.Context, ref string, policy ConflictPolicy) error
	// Commit records the index with message.
	Commit(ctx context.Context, message string) error
	// ResetIndex unstages everything, leaving the working tree untouched.
	ResetIndex(ctx context.Context) error
	// StagedFiles returns the paths staged in the index.
	StagedFiles(ctx context.Context) ([]string, error)
	// DiffStats summarizes the direct diff between from and to.
	DiffStats(ctx context.Context, from, to string) (DiffStats, error)
	// DiffFiles returns the paths changed between from and to.
	DiffFiles(ctx context.Context, from, to string) ([]string, error)
	// WorktreeChanges returns the paths with unstaged modifications and the
	// untracked paths, i.e. everything a worktree restore and clean would drop.
	WorktreeChanges(ctx context.Context) ([]string, error)
	// IsClean returns true if there are no uncommitted or untracked changes.
	IsClean(ctx context.Context) (bool, error)
	// CurrentBranch returns the checked out branch name ("HEAD" when detached).
	CurrentBranch(ctx context.Context) (string, error)
	// RestoreWorktree discards unstaged changes to tracked files in the
	// whole repository.
	RestoreWorktree(ctx context.Context) error
	// CleanUntracked removes untracked files and directories in the whole
	// repository.
	CleanUntracked(ctx context.Context) error
	// InsideWorkTree reports whether the working directory is inside a git
	// work tree.
	InsideWorkTree(ctx context.Context) (bool, error)
	// RemoteExists reports whether remote is configured.
	RemoteExists(ctx context.Context, remote string) (bool, error)
	// Version returns the git version string.
	Version(ctx context.Context) (string, error)
}
