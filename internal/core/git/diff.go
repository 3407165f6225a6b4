package git

import (
	"context"
	"strconv"
	"strings"
)

// DiffStats is the summary git prints after a diff: files changed,
// insertions and deletions.
type DiffStats struct {
	Files      int `json:"files" yaml:"files"`
	Insertions int `json:"insertions" yaml:"insertions"`
	Deletions  int `json:"deletions" yaml:"deletions"`
}

// DiffStats compares from and to directly (two-dot), not against their merge base.
func (e *Executor) DiffStats(ctx context.Context, from, to string) (DiffStats, error) {
	res, err := e.run(ctx, "get diff stats", false, "diff", "--shortstat", from, to)
	if err != nil {
		return DiffStats{}, err
	}
	return ParseDiffStats(res.Stdout), nil
}

func (e *Executor) DiffFiles(ctx context.Context, from, to string) ([]string, error) {
	res, err := e.run(ctx, "get changed files", false, "diff", "--name-only", from, to)
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

func (e *Executor) StagedFiles(ctx context.Context) ([]string, error) {
	res, err := e.run(ctx, "check staged changes", false, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

// ParseDiffStats parses the trailing summary line of git diff --stat or
// --shortstat output.
// Example: " 3 files changed, 10 insertions(+), 5 deletions(-)"
//
// Any clause may be missing (git omits zero insertions or deletions) and
// then counts as zero. Insertions and deletions are recognized by their
// (+) and (-) markers, which git keeps in every locale.
func ParseDiffStats(output string) DiffStats {
	var last string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			last = line
		}
	}

	var stats DiffStats
	if last == "" {
		return stats
	}

	for i, part := range strings.Split(last, ",") {
		part = strings.TrimSpace(part)
		n := leadingInt(part)

		switch {
		case strings.Contains(part, "(+)") || strings.Contains(part, "insertion"):
			stats.Insertions = n
		case strings.Contains(part, "(-)") || strings.Contains(part, "deletion"):
			stats.Deletions = n
		case i == 0:
			stats.Files = n
		}
	}

	return stats
}

// leadingInt returns the number a clause starts with, or zero.
func leadingInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
