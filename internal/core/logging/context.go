package logging

import "context"

type contextKey string

const (
	reviewBranchKey contextKey = "review_branch"
	commandKey      contextKey = "command"
)

// WithReviewBranch adds the active review branch name to the context.
func WithReviewBranch(ctx context.Context, branch string) context.Context {
	return context.WithValue(ctx, reviewBranchKey, branch)
}

// WithCommand adds the CLI command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetReviewBranch retrieves the review branch from the context.
// Returns empty string if not present.
func GetReviewBranch(ctx context.Context) string {
	if b, ok := ctx.Value(reviewBranchKey).(string); ok {
		return b
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
