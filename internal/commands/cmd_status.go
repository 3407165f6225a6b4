package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/Lfu001/cresca/internal/core/logging"
	"github.com/Lfu001/cresca/internal/core/review"
	"github.com/Lfu001/cresca/internal/core/session"
	"github.com/Lfu001/cresca/internal/core/styles"
	"github.com/Lfu001/cresca/internal/cresca"
	"github.com/Lfu001/cresca/pkg/iojson"
)

// formatMarkdown renders the status as a glamour-styled markdown report.
const formatMarkdown iojson.Format = "markdown"

type StatusCmd struct {
	flags *Flags
	app   *cresca.App

	// flags
	format   string
	include  []string
	maxFiles int
}

// NewStatusCmd creates a new status command
func NewStatusCmd(flags *Flags, app *cresca.App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app}
}

// Register adds the status command to the application
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "status",
		Usage:     "Show what is left to review",
		UsageText: "cresca status [--format text|json|yaml|markdown] [--include <glob>...]",
		Description: `Compares the current review branch with the tip of its source branch and
prints the remaining diff: file count, insertions, deletions and the files.

--include limits the listed files to those matching a glob ("**/*.go").
The counts always cover the whole remaining diff.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, yaml, markdown)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.StringSliceFlag{
				Name:        "include",
				Usage:       "only list files matching `GLOB` (repeatable)",
				Destination: &cmd.include,
			},
			&cli.IntFlag{
				Name:        "max-files",
				Usage:       "list at most `N` files in text output (negative lists all; default from config)",
				Destination: &cmd.maxFiles,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatusCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "status")

	format, err := iojson.ParseFormat(cmd.format, iojson.FormatJSON, iojson.FormatYAML, formatMarkdown)
	if err != nil {
		return err
	}

	sess, err := cmd.app.CurrentSession(ctx)
	if err != nil {
		return err
	}

	status, err := cmd.app.Status.Status(ctx, sess)
	if err != nil {
		return err
	}

	status, err = status.FilterFiles(cmd.include)
	if err != nil {
		return err
	}

	limit := cmd.app.Config.Status.MaxFiles
	if c.IsSet("max-files") {
		limit = cmd.maxFiles
	}

	w := c.Root().Writer
	switch format {
	case iojson.FormatJSON, iojson.FormatYAML:
		return iojson.WriteFormat(w, os.Stderr, format, status)
	case formatMarkdown:
		return writeStatusMarkdown(w, sess, status, limit)
	default:
		writeStatusText(w, status, limit)
		return nil
	}
}

func writeStatusText(w io.Writer, status review.Status, limit int) {
	_, _ = fmt.Fprintln(w, styles.TextPrimaryBoldStyle.Render(styles.IconClipboard+" Review status:"))
	_, _ = fmt.Fprintf(w, "  Remaining diff to %s: %d file(s), %s, %s\n",
		styles.BranchStyle.Render(status.Source),
		status.FileCount,
		styles.GitAdditionsStyle.Render(fmt.Sprintf("+%d insertion(s)", status.Insertions)),
		styles.GitDeletionsStyle.Render(fmt.Sprintf("-%d deletion(s)", status.Deletions)),
	)

	if status.Done() {
		_, _ = fmt.Fprintln(w, "  "+styles.TextSuccessStyle.Render("Nothing left to review."))
		return
	}

	shown, omitted := status.Truncate(limit)
	if len(shown) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w, "  Files remaining:")
	for _, f := range shown {
		_, _ = fmt.Fprintf(w, "    - %s\n", styles.PathStyle.Render(f))
	}
	if omitted > 0 {
		_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render(fmt.Sprintf("    ... and %d more file(s)", omitted)))
	}
}

func statusMarkdown(sess session.Session, status review.Status, limit int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Review of `%s` against `%s`\n\n", sess.Source, sess.Target)
	fmt.Fprintf(&b, "Remaining diff to **%s**: %d file(s), +%d insertion(s), -%d deletion(s)\n\n",
		status.Source, status.FileCount, status.Insertions, status.Deletions)

	if status.Done() {
		b.WriteString("Nothing left to review.\n")
		return b.String()
	}

	shown, omitted := status.Truncate(limit)
	if len(shown) > 0 {
		b.WriteString("## Files remaining\n\n")
		for _, f := range shown {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
	}
	if omitted > 0 {
		fmt.Fprintf(&b, "\n_... and %d more file(s)_\n", omitted)
	}

	return b.String()
}

func writeStatusMarkdown(w io.Writer, sess session.Session, status review.Status, limit int) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(statusMarkdown(sess, status, limit))
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
