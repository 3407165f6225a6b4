package executil

import (
	"context"
	"strings"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Dir  string
	Cmd  string
	Args []string
}

// Line returns the command and its arguments joined by single spaces.
func (c RecordedCommand) Line() string {
	return strings.Join(append([]string{c.Cmd}, c.Args...), " ")
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps a command line to its output. The full line
	// (e.g., "git merge-base main feature") is tried first, then the bare
	// command name (e.g., "git").
	Outputs map[string]Output

	// Errors maps a command line to a start error, using the same lookup
	// order as Outputs.
	Errors map[string]error
}

// RunDir records the command with directory and returns configured output/error.
func (e *RecordingExecutor) RunDir(ctx context.Context, dir, cmd string, args ...string) (Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec := RecordedCommand{
		Dir:  dir,
		Cmd:  cmd,
		Args: args,
	}
	e.Commands = append(e.Commands, rec)

	line := rec.Line()

	var out Output
	if o, ok := e.Outputs[line]; ok {
		out = o
	} else if o, ok := e.Outputs[cmd]; ok {
		out = o
	}

	var err error
	if e2, ok := e.Errors[line]; ok {
		err = e2
	} else if e2, ok := e.Errors[cmd]; ok {
		err = e2
	}

	return out, err
}

// Lines returns every recorded command as a single string each.
func (e *RecordingExecutor) Lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	lines := make([]string, len(e.Commands))
	for i, c := range e.Commands {
		lines[i] = c.Line()
	}
	return lines
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
