package review

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/session"
)

// DefaultMaxFiles is how many remaining files status lists before
// summarizing the rest.
const DefaultMaxFiles = 10

// Status is the remaining gap between the review branch and the source tip.
type Status struct {
	Source     string   `json:"source" yaml:"source"`
	FileCount  int      `json:"file_count" yaml:"file_count"`
	Insertions int      `json:"insertions" yaml:"insertions"`
	Deletions  int      `json:"deletions" yaml:"deletions"`
	Files      []string `json:"files" yaml:"files"`
}

// Done reports whether nothing remains to review.
func (s Status) Done() bool {
	return s.FileCount == 0 && len(s.Files) == 0
}

// Truncate returns at most limit files in backend order and how many were
// left out. A limit of zero or less shows every file.
func (s Status) Truncate(limit int) (shown []string, omitted int) {
	if limit <= 0 || len(s.Files) <= limit {
		return s.Files, 0
	}
	return s.Files[:limit], len(s.Files) - limit
}

// FilterFiles keeps only the files matching at least one doublestar
// pattern ("**/*.go", "docs/*"). The counts are left untouched: they
// describe the whole remaining diff.
func (s Status) FilterFiles(patterns []string) (Status, error) {
	if len(patterns) == 0 {
		return s, nil
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return s, fmt.Errorf("invalid file pattern %q", p)
		}
	}

	files := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, f); ok {
				files = append(files, f)
				break
			}
		}
	}

	s.Files = files
	return s, nil
}

// Reporter computes review status.
type Reporter struct {
	git git.Git
}

// NewReporter creates a reporter.
func NewReporter(g git.Git) *Reporter {
	return &Reporter{git: g}
}

// Status compares HEAD directly with the source tip of sess.
func (r *Reporter) Status(ctx context.Context, sess session.Session) (Status, error) {
	stats, err := r.git.DiffStats(ctx, "HEAD", sess.Source)
	if err != nil {
		return Status{}, err
	}

	files, err := r.git.DiffFiles(ctx, "HEAD", sess.Source)
	if err != nil {
		return Status{}, err
	}
	if files == nil {
		files = []string{}
	}

	return Status{
		Source:     sess.Source,
		FileCount:  stats.Files,
		Insertions: stats.Insertions,
		Deletions:  stats.Deletions,
		Files:      files,
	}, nil
}
