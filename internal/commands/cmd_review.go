package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Lfu001/cresca/internal/core/logging"
	"github.com/Lfu001/cresca/internal/core/review"
	"github.com/Lfu001/cresca/internal/core/styles"
	"github.com/Lfu001/cresca/internal/cresca"
	"github.com/Lfu001/cresca/internal/printer"
)

type ReviewCmd struct {
	flags *Flags
	app   *cresca.App

	// flags
	skipTo string
	stopAt string
}

// NewReviewCmd creates a new review command
func NewReviewCmd(flags *Flags, app *cresca.App) *ReviewCmd {
	return &ReviewCmd{flags: flags, app: app}
}

// Register adds the review command to the application
func (cmd *ReviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "review",
		Usage:     "Prepare a review branch with the changes left to review",
		UsageText: "cresca review <target> <source> [--skip-to <commit>] [--stop-at <commit>]",
		Description: `Updates <source> and <target> from the remote, then switches to the review
branch for the pair (creating it at their merge base the first time) and lays
the remaining diff to <source> out as unstaged changes.

Stage what you have reviewed and run 'cresca approve'. Run 'cresca review'
again after new commits land on <source>; approved work is kept.

--skip-to approves every commit before the given one without review.
--stop-at limits the diff to the given commit.`,
		ArgsUsage:     "<target> <source>",
		ShellComplete: BranchCompleter(cmd.app),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "skip-to",
				Usage:       "auto-approve the commits before `COMMIT` and start reviewing there",
				Destination: &cmd.skipTo,
			},
			&cli.StringFlag{
				Name:        "stop-at",
				Usage:       "only review up to and including `COMMIT`",
				Destination: &cmd.stopAt,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReviewCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	ctx = logging.WithCommand(ctx, "review")

	if c.Args().Len() != 2 {
		return fmt.Errorf("review needs exactly two arguments, <target> and <source> (got %d)", c.Args().Len())
	}

	sess := cmd.app.NewSession(c.Args().Get(0), c.Args().Get(1))

	res, err := cmd.app.Review.Run(ctx, sess, review.Options{
		SkipTo: cmd.skipTo,
		StopAt: cmd.stopAt,
	})
	if err != nil {
		return err
	}

	printReviewResult(p, res)
	return nil
}

func printReviewResult(p *printer.Printer, res review.Result) {
	p.Section(styles.IconGitBranch + " " + res.Session.Branch)
	p.Infof("Reviewing %s against %s on %s (%d commit(s) since %s)",
		res.Session.Source, res.Session.Target, res.Session.Branch, res.Range.Len(), shortID(res.Base))

	if res.AutoApproved {
		p.Infof("Approved the commits before %s without review", shortID(res.Boundaries.SkipTo))
	}
	if res.Boundaries.StopAt != "" {
		p.Infof("Stopping at %s", shortID(res.Boundaries.StopAt))
	}

	if !res.Pending {
		p.Successf("Review branch prepared successfully. However, it seems like there are no unreviewed changes.")
		return
	}

	p.Successf("Review branch prepared successfully. Stage the changes you have reviewed and run `cresca approve` to approve them.")
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
