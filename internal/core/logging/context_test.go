package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithReviewBranch(t *testing.T) {
	ctx := WithReviewBranch(context.Background(), "review-main-develop")
	assert.Equal(t, "review-main-develop", GetReviewBranch(ctx))
	assert.Empty(t, GetCommand(ctx))
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "approve")
	assert.Equal(t, "approve", GetCommand(ctx))
	assert.Empty(t, GetReviewBranch(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetReviewBranch(ctx))
	assert.Empty(t, GetCommand(ctx))
}
