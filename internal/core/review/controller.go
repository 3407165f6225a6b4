package review

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Lfu001/cresca/internal/core/commitrange"
	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/logging"
	"github.com/Lfu001/cresca/internal/core/session"
)

// AutoApproveMessage is the commit message for commits approved by --skip-to.
const AutoApproveMessage = "Auto-approve earlier commits"

// Options are the per-run review boundaries as typed by the user.
type Options struct {
	SkipTo string
	StopAt string
}

// Result describes a finished (or interrupted) review preparation.
type Result struct {
	Session    session.Session
	Base       string
	Range      commitrange.Range
	Boundaries commitrange.Boundaries
	// AutoApproved is true when commits before --skip-to were committed to
	// the review branch in this run.
	AutoApproved bool
	// End is the ref whose content was staged for review.
	End   string
	State State
	// Pending is true when the working tree holds unreviewed changes.
	Pending bool
}

// Controller prepares review branches.
type Controller struct {
	git    git.Git
	remote string
	policy git.ConflictPolicy
	log    zerolog.Logger
}

// NewController creates a controller that synchronizes branches from remote
// and resolves merge conflicts with policy.
func NewController(g git.Git, remote string, policy git.ConflictPolicy) *Controller {
	return &Controller{
		git:    g,
		remote: remote,
		policy: policy,
		log:    logging.Component("review"),
	}
}

// Run brings the review branch of sess up to date and leaves the changes
// still to review as unstaged working tree changes.
//
// The steps are synchronize, compute base, validate boundaries, ensure the
// review branch, auto-approve (with SkipTo only) and stage the remaining
// diff. Any error stops the run; Result.State is the last completed state.
// Running again with the same arguments is the recovery path.
func (c *Controller) Run(ctx context.Context, sess session.Session, opts Options) (Result, error) {
	ctx = logging.WithReviewBranch(ctx, sess.Branch)
	res := Result{Session: sess, State: StateNotStarted}

	if err := c.checkPreconditions(ctx, sess); err != nil {
		return res, err
	}

	if err := c.synchronize(ctx, sess); err != nil {
		return res, err
	}

	base, err := c.git.MergeBase(ctx, sess.Target, sess.Source)
	if err != nil {
		return res, err
	}
	res.Base = base
	res.State = StateBaseComputed
	c.log.Debug().Ctx(ctx).Str("base", base).Msg("computed merge base")

	r, err := commitrange.Compute(ctx, c.git, sess.Target+".."+sess.Source, base, sess.Source)
	if err != nil {
		return res, err
	}
	res.Range = r

	bounds, err := commitrange.Validate(ctx, c.git, r, opts.SkipTo, opts.StopAt)
	if err != nil {
		return res, err
	}
	res.Boundaries = bounds

	if err := c.ensureBranch(ctx, sess, base); err != nil {
		return res, err
	}
	res.State = StateBranchEnsured

	if bounds.SkipTo != "" {
		approved, err := c.autoApprove(ctx, base, bounds.SkipTo)
		if err != nil {
			return res, err
		}
		res.AutoApproved = approved
		res.State = StateAutoApproved
	}

	res.End = sess.Source
	if bounds.StopAt != "" {
		res.End = bounds.StopAt
	}

	if err := c.stage(ctx, res.End); err != nil {
		return res, err
	}
	res.State = StateDiffStaged

	clean, err := c.git.IsClean(ctx)
	if err != nil {
		return res, err
	}
	res.Pending = !clean

	c.log.Info().Ctx(ctx).
		Int("commits", r.Len()).
		Bool("auto_approved", res.AutoApproved).
		Bool("pending", res.Pending).
		Msg("review branch prepared")

	return res, nil
}

func (c *Controller) checkPreconditions(ctx context.Context, sess session.Session) error {
	if err := session.Validate(sess.Target, sess.Source); err != nil {
		return &PreconditionError{
			Reason: fmt.Sprintf("invalid branch names: %v", err),
			Hint:   "pass the target branch first and the branch under review second",
		}
	}

	clean, err := c.git.IsClean(ctx)
	if err != nil {
		return err
	}
	if !clean {
		return &PreconditionError{
			Reason: "working tree has uncommitted changes",
			Hint:   "commit or stash them, or run `cresca approve` to finish the current review round",
		}
	}
	return nil
}

// synchronize updates the local source and target branches from the remote.
// It ends on the target branch.
func (c *Controller) synchronize(ctx context.Context, sess session.Session) error {
	for _, branch := range []string{sess.Source, sess.Target} {
		if err := c.git.Switch(ctx, branch); err != nil {
			return err
		}
		if err := c.git.Pull(ctx, c.remote, branch); err != nil {
			return err
		}
	}
	return nil
}

// ensureBranch switches to the review branch, creating it at base when it
// does not exist. An existing branch keeps everything approved on it.
func (c *Controller) ensureBranch(ctx context.Context, sess session.Session, base string) error {
	exists, err := c.git.BranchExists(ctx, sess.Branch)
	if err != nil {
		return err
	}

	if exists {
		c.log.Debug().Ctx(ctx).Msg("reusing review branch")
		return c.git.Switch(ctx, sess.Branch)
	}

	c.log.Debug().Ctx(ctx).Str("base", base).Msg("creating review branch")
	return c.git.CreateBranch(ctx, sess.Branch, base)
}

// autoApprove commits everything up to the parent of skipTo onto the review
// branch. It returns false when there was nothing before skipTo or the
// branch already contained it.
func (c *Controller) autoApprove(ctx context.Context, base, skipTo string) (bool, error) {
	parent := skipTo + "^"

	earlier, err := c.git.HasCommits(ctx, base, parent)
	if err != nil {
		return false, err
	}
	if !earlier {
		return false, nil
	}

	if err := c.git.SquashMerge(ctx, parent, c.policy); err != nil {
		return false, err
	}

	staged, err := c.git.StagedFiles(ctx)
	if err != nil {
		return false, err
	}
	if len(staged) == 0 {
		c.log.Debug().Ctx(ctx).Msg("earlier commits already approved")
		return false, nil
	}

	if err := c.git.Commit(ctx, AutoApproveMessage); err != nil {
		return false, err
	}
	return true, nil
}

// stage squash-merges end and unstages the result so it shows up as
// ordinary working tree changes.
func (c *Controller) stage(ctx context.Context, end string) error {
	if err := c.git.SquashMerge(ctx, end, c.policy); err != nil {
		return err
	}
	return c.git.ResetIndex(ctx)
}
