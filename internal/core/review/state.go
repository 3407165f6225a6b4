package review

// State is a step of the review branch preparation. States only move
// forward; a failed run reports the last state it completed.
type State int

const (
	StateNotStarted State = iota
	StateBaseComputed
	StateBranchEnsured
	StateAutoApproved
	StateDiffStaged
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateBaseComputed:
		return "base-computed"
	case StateBranchEnsured:
		return "branch-ensured"
	case StateAutoApproved:
		return "auto-approved"
	case StateDiffStaged:
		return "diff-staged"
	default:
		return "unknown"
	}
}
