package git

import "fmt"

// ConflictPolicy decides how a squash merge resolves conflicting hunks.
type ConflictPolicy string

const (
	// PolicyTheirs resolves every conflict in favor of the incoming ref.
	PolicyTheirs ConflictPolicy = "theirs"
	// PolicyOurs resolves every conflict in favor of the current branch.
	PolicyOurs ConflictPolicy = "ours"
	// PolicyNone leaves conflicts to git, which fails the merge.
	PolicyNone ConflictPolicy = "none"
)

// ParseConflictPolicy converts a config or flag value into a policy.
// The empty string selects PolicyTheirs.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case "", PolicyTheirs:
		return PolicyTheirs, nil
	case PolicyOurs, PolicyNone:
		return ConflictPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown conflict policy %q (want theirs, ours or none)", s)
	}
}

func (p ConflictPolicy) mergeArgs() []string {
	switch p {
	case PolicyOurs:
		return []string{"-X", "ours"}
	case PolicyNone:
		return nil
	default:
		return []string{"-X", "theirs"}
	}
}
