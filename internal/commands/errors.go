package commands

import (
	"errors"

	"github.com/Lfu001/cresca/internal/core/commitrange"
	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/review"
	"github.com/Lfu001/cresca/internal/printer"
)

// RenderError prints err once, with the git stderr or a remediation hint
// when the error carries one.
func RenderError(p *printer.Printer, err error) {
	var (
		pre      *review.PreconditionError
		boundary *commitrange.BoundaryError
		cmdErr   *git.CommandError
		invErr   *git.InvocationError
	)

	p.Errorf("%s", err)

	switch {
	case errors.As(err, &pre):
		if pre.Hint != "" {
			p.Hint("%s", pre.Hint)
		}
	case errors.As(err, &boundary):
		p.Hint("list the commits under review with `git log --oneline %s`", boundary.Range)
	case errors.As(err, &cmdErr):
		if detail := cmdErr.Detail(); detail != "" {
			p.Detail(detail)
		}
	case errors.As(err, &invErr):
		p.Hint("check that git is installed, or point --git-path at it")
	}
}
