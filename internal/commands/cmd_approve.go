package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/Lfu001/cresca/internal/core/logging"
	"github.com/Lfu001/cresca/internal/core/review"
	"github.com/Lfu001/cresca/internal/cresca"
	"github.com/Lfu001/cresca/internal/printer"
)

// maxConfirmFiles caps the paths listed in the discard confirmation.
const maxConfirmFiles = 10

type ApproveCmd struct {
	flags *Flags
	app   *cresca.App

	// flags
	yes bool

	// confirm asks before unreviewed changes are discarded. Replaced in tests.
	confirm func(discard []string) (bool, error)
	// canPrompt reports whether stdin is interactive. Replaced in tests.
	canPrompt func() bool
}

// NewApproveCmd creates a new approve command
func NewApproveCmd(flags *Flags, app *cresca.App) *ApproveCmd {
	return &ApproveCmd{
		flags:     flags,
		app:       app,
		confirm:   confirmDiscard,
		canPrompt: stdinIsTerminal,
	}
}

// Register adds the approve command to the application
func (cmd *ApproveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "approve",
		Usage:     "Approve the staged changes and discard the rest",
		UsageText: "cresca approve [--yes]",
		Description: `Commits the staged changes on the current review branch as approved, then
discards every unstaged change and untracked file in the repository.

Unstaged changes from the source branch come back on the next 'cresca review'.
When stdin is a terminal and there is something to discard, cresca asks
first; --yes skips the question.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "do not ask before discarding unstaged changes",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ApproveCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	ctx = logging.WithCommand(ctx, "approve")

	sess, err := cmd.app.CurrentSession(ctx)
	if err != nil {
		return err
	}

	if !cmd.yes && cmd.canPrompt() {
		discard, err := cmd.app.Approver.Discardable(ctx)
		if err != nil {
			return err
		}

		if len(discard) > 0 {
			ok, err := cmd.confirm(discard)
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					p.Infof("Approval cancelled")
					return nil
				}
				return fmt.Errorf("confirm: %w", err)
			}
			if !ok {
				p.Infof("Approval cancelled")
				return nil
			}
		}
	}

	approval, err := cmd.app.Approver.Approve(ctx, sess)
	if err != nil {
		return err
	}

	if approval.Outcome == review.NothingToApprove {
		p.Infof("There are no reviewed changes to approve. Ending the review.")
		return nil
	}

	p.Successf("Reviewed changes were approved successfully. (%d file(s))", len(approval.Files))
	return nil
}

func confirmDiscard(discard []string) (bool, error) {
	shown := discard
	if len(shown) > maxConfirmFiles {
		shown = shown[:maxConfirmFiles]
	}

	desc := strings.Join(shown, "\n")
	if more := len(discard) - len(shown); more > 0 {
		desc += fmt.Sprintf("\n... and %d more file(s)", more)
	}

	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Discard %d unstaged or untracked file(s)?", len(discard))).
		Description(desc + "\n\nChanges from the source branch come back on the next `cresca review`.").
		Affirmative("Approve").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
