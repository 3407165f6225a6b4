package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Lfu001/cresca/internal/core/session"
	"github.com/Lfu001/cresca/internal/cresca"
)

// BranchCompleter returns a ShellCompleteFunc that suggests local branches
// for the target and source arguments. Review branches are left out.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func BranchCompleter(app *cresca.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if app.Git == nil {
			return
		}

		branches, err := app.Git.ListBranches(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, b := range reviewable(branches, app.Sessions.Prefix()) {
			_, _ = fmt.Fprintln(w, b)
		}
	}
}

func reviewable(branches []string, prefix string) []string {
	out := make([]string, 0, len(branches))
	for _, b := range branches {
		if _, ok := session.Parse(b, prefix); ok {
			continue
		}
		out = append(out, b)
	}
	return out
}
