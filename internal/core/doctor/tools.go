package doctor

import (
	"context"
	"os/exec"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// VersionReader reports the git version.
type VersionReader interface {
	Version(ctx context.Context) (string, error)
}

// ToolsCheck verifies that the git binary is available and runs.
type ToolsCheck struct {
	gitPath string
	git     VersionReader
}

// NewToolsCheck creates a new tools check for the git binary at gitPath.
func NewToolsCheck(gitPath string, git VersionReader) *ToolsCheck {
	return &ToolsCheck{gitPath: gitPath, git: git}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	path, err := lookPathFunc(c.gitPath)
	if err != nil {
		result.Items = append(result.Items, fail("git", c.gitPath+" not found on PATH"))
		return result
	}
	result.Items = append(result.Items, pass("git", path))

	version, err := c.git.Version(ctx)
	if err != nil {
		result.Items = append(result.Items, fail("git version", err.Error()))
		return result
	}
	result.Items = append(result.Items, pass("git version", version))

	return result
}
