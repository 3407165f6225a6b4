package git

import (
	"fmt"
	"strings"
)

const maxStderrLen = 500

// InvocationError reports that git could not be started at all.
type InvocationError struct {
	Op   string
	Args []string
	Err  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// CommandError reports that git ran but exited non-zero for an operation
// that is not allowed to fail.
type CommandError struct {
	Op       string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to %s: git %s exited with status %d", e.Op, strings.Join(e.Args, " "), e.ExitCode)
}

// Detail returns the captured stderr, capped at 500 bytes so large or
// ANSI-polluted output stays readable.
func (e *CommandError) Detail() string {
	s := strings.TrimSpace(e.Stderr)
	if len(s) > maxStderrLen {
		s = s[:maxStderrLen] + "..."
	}
	return s
}
