// Package printer writes user-facing CLI output. Core packages return values;
// commands render them through a Printer carried in the context.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/styles"
)

type ctxKey struct{}

// Printer renders styled messages. Normal output goes to out; errors and
// warnings go to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

var _ git.Echo = (*Printer)(nil)

// New creates a printer over the given writers.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one bound to stdout and stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Out returns the writer for regular output.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.TextPrimaryStyle.Render(styles.IconInfo), format, args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, styles.TextSuccessStyle.Render(styles.IconCheck), format, args...)
}

// Warnf writes a warning line to the error stream.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.errOut, styles.TextWarningStyle.Render(styles.IconWarning), format, args...)
}

// Errorf writes an error line to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.errOut, styles.TextErrorStyle.Render(styles.IconCross), format, args...)
}

// Hint writes a muted remediation line to the error stream.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintln(p.errOut, "  "+styles.TextMutedStyle.Render("hint: "+fmt.Sprintf(format, args...)))
}

// Detail writes text indented and muted to the error stream, one line per
// input line. Used for captured git stderr.
func (p *Printer) Detail(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintln(p.errOut, "    "+styles.TextMutedStyle.Render(line))
	}
}

// Section writes a header line.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.out, styles.CommandHeaderStyle.Render(title))
}

// Command echoes a git invocation. It makes a Printer usable as git.Echo.
func (p *Printer) Command(args []string) {
	fmt.Fprintln(p.out, styles.GitCommandStyle.Render("$ git "+strings.Join(args, " ")))
}

// Output echoes the stdout of a git invocation.
func (p *Printer) Output(stdout string) {
	for _, line := range strings.Split(strings.TrimRight(stdout, "\n"), "\n") {
		fmt.Fprintln(p.out, styles.GitOutputStyle.Render(line))
	}
}

func (p *Printer) line(w io.Writer, icon, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", icon, fmt.Sprintf(format, args...))
}
