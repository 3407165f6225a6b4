package commitrange

import (
	"context"
	"fmt"
	"strings"
)

// RevLister lists the commits of a range.
type RevLister interface {
	RevList(ctx context.Context, from, to string) ([]string, error)
}

// Range is the set of commits in (Base, Tip].
type Range struct {
	// Label names the range for diagnostics, e.g. "main..develop".
	Label   string
	Base    string
	Tip     string
	Commits []string
}

// Len returns the number of commits in the range.
func (r Range) Len() int {
	return len(r.Commits)
}

// Empty reports whether the range has no commits.
func (r Range) Empty() bool {
	return len(r.Commits) == 0
}

// Resolve returns the full id of the first commit in the range that starts
// with ref. An empty ref never resolves.
func (r Range) Resolve(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	for _, c := range r.Commits {
		if strings.HasPrefix(c, ref) {
			return c, true
		}
	}
	return "", false
}

// Contains reports whether ref resolves within the range.
func (r Range) Contains(ref string) bool {
	_, ok := r.Resolve(ref)
	return ok
}

// Compute lists base..tip. label is only used in error messages.
func Compute(ctx context.Context, git RevLister, label, base, tip string) (Range, error) {
	commits, err := git.RevList(ctx, base, tip)
	if err != nil {
		return Range{}, fmt.Errorf("compute commit range %s: %w", label, err)
	}
	return Range{
		Label:   label,
		Base:    base,
		Tip:     tip,
		Commits: commits,
	}, nil
}
