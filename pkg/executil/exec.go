// Package executil provides process execution utilities.
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Output is the captured result of a command that ran to completion.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// StdoutString returns stdout with surrounding whitespace removed.
func (o Output) StdoutString() string {
	return strings.TrimSpace(string(o.Stdout))
}

// StderrString returns stderr with surrounding whitespace removed.
func (o Output) StderrString() string {
	return strings.TrimSpace(string(o.Stderr))
}

// Executor runs external commands.
type Executor interface {
	// RunDir executes cmd in dir (empty means inherit cwd) and captures stdout
	// and stderr separately. A non-zero exit status is reported through
	// Output.ExitCode; the returned error is non-nil only when the process
	// could not be started or waited on.
	RunDir(ctx context.Context, dir, cmd string, args ...string) (Output, error)
}

// RealExecutor calls actual commands.
type RealExecutor struct{}

// RunDir executes a command in a specific directory.
func (e *RealExecutor) RunDir(ctx context.Context, dir, cmd string, args ...string) (Output, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	if dir != "" {
		c.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	out := Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	if err != nil {
		if dir != "" {
			return out, fmt.Errorf("exec %s in %s: %w", cmd, dir, err)
		}
		return out, fmt.Errorf("exec %s: %w", cmd, err)
	}

	return out, nil
}
