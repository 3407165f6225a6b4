package commitrange

import (
	"context"
	"fmt"
)

const (
	FlagSkipTo = "skip-to"
	FlagStopAt = "stop-at"
)

// Boundaries are the resolved review boundaries. Empty fields mean the
// boundary was not supplied.
type Boundaries struct {
	SkipTo string
	StopAt string
}

// Validate checks the user's boundaries against r and resolves them to full
// commit ids.
//
// Each supplied boundary must be in r. When both are supplied, stop-at must
// be the same commit as skip-to or lie in skipTo..tip.
func Validate(ctx context.Context, git RevLister, r Range, skipTo, stopAt string) (Boundaries, error) {
	var b Boundaries

	if skipTo != "" {
		full, ok := r.Resolve(skipTo)
		if !ok {
			return Boundaries{}, &BoundaryError{Flag: FlagSkipTo, Ref: skipTo, Range: r.Label}
		}
		b.SkipTo = full
	}

	if stopAt != "" {
		full, ok := r.Resolve(stopAt)
		if !ok {
			return Boundaries{}, &BoundaryError{Flag: FlagStopAt, Ref: stopAt, Range: r.Label}
		}
		b.StopAt = full
	}

	if b.SkipTo == "" || b.StopAt == "" || b.SkipTo == b.StopAt {
		return b, nil
	}

	after, err := Compute(ctx, git, skipTo+".."+r.Tip, b.SkipTo, r.Tip)
	if err != nil {
		return Boundaries{}, fmt.Errorf("order boundaries: %w", err)
	}
	if !after.Contains(b.StopAt) {
		return Boundaries{}, &BoundaryError{Flag: FlagStopAt, Ref: stopAt, Range: after.Label, After: skipTo}
	}

	return b, nil
}
