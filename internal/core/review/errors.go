package review

import "fmt"

// PreconditionError reports that the repository is not in a state the
// requested operation can start from. Hint tells the user how to fix it.
type PreconditionError struct {
	Reason string
	Hint   string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// ErrNotOnReviewBranch builds the precondition error for approve and status
// run outside a review branch.
func ErrNotOnReviewBranch(branch string) *PreconditionError {
	return &PreconditionError{
		Reason: fmt.Sprintf("not on a review branch (current branch: %s)", branch),
		Hint:   "run `cresca review <target> <source>` to prepare a review branch",
	}
}
