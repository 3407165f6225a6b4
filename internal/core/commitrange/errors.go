package commitrange

import "fmt"

// BoundaryError reports a skip-to or stop-at reference that is outside the
// range under review or out of order with its counterpart.
type BoundaryError struct {
	// Flag is the option the reference came from ("skip-to" or "stop-at").
	Flag string
	Ref  string
	// Range is the label of the range the reference was checked against.
	Range string
	// After is set when Ref must be at or after this reference.
	After string
}

func (e *BoundaryError) Error() string {
	if e.After != "" {
		return fmt.Sprintf("--%s (%s) must be at or after --skip-to (%s)", e.Flag, e.Ref, e.After)
	}
	return fmt.Sprintf("commit %s (--%s) is not in the range %s", e.Ref, e.Flag, e.Range)
}
