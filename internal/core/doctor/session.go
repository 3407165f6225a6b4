package doctor

import (
	"context"
	"fmt"

	"github.com/Lfu001/cresca/internal/core/session"
)

// SessionLister is the subset of session.Resolver the session check needs.
type SessionLister interface {
	Current(ctx context.Context) (session.Session, bool, error)
	List(ctx context.Context) ([]session.Session, error)
}

// SessionCheck reports the current review session and how many review
// branches exist. Not being on a review branch is only a warning.
type SessionCheck struct {
	sessions SessionLister
}

// NewSessionCheck creates a session check.
func NewSessionCheck(sessions SessionLister) *SessionCheck {
	return &SessionCheck{sessions: sessions}
}

func (c *SessionCheck) Name() string {
	return "Review Session"
}

func (c *SessionCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	sess, ok, err := c.sessions.Current(ctx)
	switch {
	case err != nil:
		result.Items = append(result.Items, fail("current", err.Error()))
	case !ok:
		result.Items = append(result.Items, warn("current", "not on a review branch"))
	default:
		result.Items = append(result.Items, pass("current",
			fmt.Sprintf("reviewing %s against %s", sess.Source, sess.Target)))
	}

	all, err := c.sessions.List(ctx)
	if err != nil {
		result.Items = append(result.Items, fail("review branches", err.Error()))
		return result
	}
	result.Items = append(result.Items, pass("review branches", fmt.Sprintf("%d found", len(all))))

	return result
}
