package doctor

import (
	"context"
	"fmt"
)

// RepoInspector is the subset of git the repository check needs.
type RepoInspector interface {
	InsideWorkTree(ctx context.Context) (bool, error)
	RemoteExists(ctx context.Context, remote string) (bool, error)
	IsClean(ctx context.Context) (bool, error)
}

// RepoCheck verifies that cresca runs inside a git work tree with the
// configured remote.
type RepoCheck struct {
	git    RepoInspector
	remote string
}

// NewRepoCheck creates a repository check.
func NewRepoCheck(git RepoInspector, remote string) *RepoCheck {
	return &RepoCheck{git: git, remote: remote}
}

func (c *RepoCheck) Name() string {
	return "Repository"
}

func (c *RepoCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	inside, err := c.git.InsideWorkTree(ctx)
	switch {
	case err != nil:
		result.Items = append(result.Items, fail("work tree", err.Error()))
		return result
	case !inside:
		result.Items = append(result.Items, fail("work tree", "not inside a git work tree"))
		return result
	}
	result.Items = append(result.Items, pass("work tree", "inside a git work tree"))

	exists, err := c.git.RemoteExists(ctx, c.remote)
	switch {
	case err != nil:
		result.Items = append(result.Items, fail("remote", err.Error()))
	case !exists:
		result.Items = append(result.Items, fail("remote", fmt.Sprintf("remote %q is not configured", c.remote)))
	default:
		result.Items = append(result.Items, pass("remote", c.remote))
	}

	clean, err := c.git.IsClean(ctx)
	switch {
	case err != nil:
		result.Items = append(result.Items, fail("working tree", err.Error()))
	case !clean:
		result.Items = append(result.Items, warn("working tree", "has uncommitted changes"))
	default:
		result.Items = append(result.Items, pass("working tree", "clean"))
	}

	return result
}
