package review

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/logging"
	"github.com/Lfu001/cresca/internal/core/session"
)

// ApproveMessage is the commit message for reviewer-approved changes.
const ApproveMessage = "Approve reviewed changes"

// ApprovalOutcome tells whether an approval round recorded anything.
type ApprovalOutcome int

const (
	NothingToApprove ApprovalOutcome = iota
	Approved
)

func (o ApprovalOutcome) String() string {
	if o == Approved {
		return "approved"
	}
	return "nothing-to-approve"
}

// Approval is the result of one approval round.
type Approval struct {
	Outcome ApprovalOutcome
	// Files are the staged paths committed as approved.
	Files []string
}

// Approver commits staged changes and discards the rest.
type Approver struct {
	git git.Git
	log zerolog.Logger
}

// NewApprover creates an approver.
func NewApprover(g git.Git) *Approver {
	return &Approver{git: g, log: logging.Component("approve")}
}

// Discardable returns the paths Approve would throw away: unstaged
// modifications and untracked files.
func (a *Approver) Discardable(ctx context.Context) ([]string, error) {
	return a.git.WorktreeChanges(ctx)
}

// Approve commits whatever is staged as one approval commit, then restores
// the working tree to HEAD and removes untracked files, whether or not
// anything was staged. NothingToApprove is a normal outcome.
func (a *Approver) Approve(ctx context.Context, sess session.Session) (Approval, error) {
	ctx = logging.WithReviewBranch(ctx, sess.Branch)

	staged, err := a.git.StagedFiles(ctx)
	if err != nil {
		return Approval{}, err
	}

	approval := Approval{Outcome: NothingToApprove}
	if len(staged) > 0 {
		if err := a.git.Commit(ctx, ApproveMessage); err != nil {
			return Approval{}, err
		}
		approval = Approval{Outcome: Approved, Files: staged}
	}

	if err := a.git.RestoreWorktree(ctx); err != nil {
		return approval, err
	}
	if err := a.git.CleanUntracked(ctx); err != nil {
		return approval, err
	}

	a.log.Info().Ctx(ctx).
		Stringer("outcome", approval.Outcome).
		Int("files", len(approval.Files)).
		Msg("approval round finished")

	return approval, nil
}
