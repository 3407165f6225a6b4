package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/Lfu001/cresca/internal/core/session"
	"github.com/Lfu001/cresca/internal/core/styles"
	"github.com/Lfu001/cresca/internal/cresca"
	"github.com/Lfu001/cresca/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *cresca.App

	// flags
	format string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *cresca.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "ls",
		Usage:       "List review branches",
		UsageText:   "cresca ls [--format text|json|yaml]",
		Description: "Lists the review branches in this repository with their target and source branches. The current one is marked with '*'.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, yaml)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

type lsEntry struct {
	session.Session `yaml:",inline"`
	Current         bool `json:"current" yaml:"current"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	format, err := iojson.ParseFormat(cmd.format, iojson.FormatJSON, iojson.FormatYAML)
	if err != nil {
		return err
	}

	sessions, err := cmd.app.Sessions.List(ctx)
	if err != nil {
		return err
	}

	current, _, err := cmd.app.Sessions.Current(ctx)
	if err != nil {
		return err
	}

	entries := make([]lsEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, lsEntry{Session: s, Current: s.Branch == current.Branch})
	}

	w := c.Root().Writer
	if format != iojson.FormatText {
		return iojson.WriteFormat(w, os.Stderr, format, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "No review branches found\n")
		return nil
	}

	writeLsTable(w, entries)
	return nil
}

func writeLsTable(w io.Writer, entries []lsEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, " \tBRANCH\tTARGET\tSOURCE")
	for _, e := range entries {
		marker := " "
		branch := e.Branch
		if e.Current {
			marker = "*"
			branch = styles.BranchStyle.Render(branch)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, branch, e.Target, e.Source)
	}
	_ = tw.Flush()
}
