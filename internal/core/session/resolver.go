package session

import (
	"context"
	"fmt"
	"sort"
)

// BranchReader is the subset of git a Resolver needs.
type BranchReader interface {
	CurrentBranch(ctx context.Context) (string, error)
	ListBranches(ctx context.Context) ([]string, error)
}

// Resolver derives sessions from branch names.
type Resolver struct {
	git    BranchReader
	prefix string
}

// NewResolver creates a resolver for review branches starting with prefix.
func NewResolver(git BranchReader, prefix string) *Resolver {
	return &Resolver{git: git, prefix: prefix}
}

// Prefix returns the review branch prefix.
func (r *Resolver) Prefix() string {
	return r.prefix
}

// Current returns the session of the checked out branch. The bool is false
// when the current branch is not a review branch.
func (r *Resolver) Current(ctx context.Context) (Session, bool, error) {
	branch, err := r.git.CurrentBranch(ctx)
	if err != nil {
		return Session{}, false, fmt.Errorf("resolve current session: %w", err)
	}

	s, ok := Parse(branch, r.prefix)
	return s, ok, nil
}

// List returns every session that still has a review branch, sorted by
// branch name.
func (r *Resolver) List(ctx context.Context) ([]Session, error) {
	branches, err := r.git.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var sessions []Session
	for _, b := range branches {
		if s, ok := Parse(b, r.prefix); ok {
			sessions = append(sessions, s)
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Branch < sessions[j].Branch
	})

	return sessions, nil
}
