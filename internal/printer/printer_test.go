package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(&out, &errOut), &out, &errOut
}

func TestPrinter_Streams(t *testing.T) {
	p, out, errOut := newTestPrinter()

	p.Successf("approved %d file(s)", 2)
	p.Infof("nothing to do")
	p.Warnf("careful")
	p.Errorf("boom")
	p.Hint("run %s", "cresca review")
	p.Detail("fatal: bad revision\nsecond line\n")

	assert.Contains(t, out.String(), "approved 2 file(s)")
	assert.Contains(t, out.String(), "nothing to do")
	assert.NotContains(t, out.String(), "boom")

	assert.Contains(t, errOut.String(), "careful")
	assert.Contains(t, errOut.String(), "boom")
	assert.Contains(t, errOut.String(), "hint: run cresca review")
	assert.Contains(t, errOut.String(), "    fatal: bad revision\n")
	assert.Contains(t, errOut.String(), "    second line\n")
}

func TestPrinter_Echo(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.Command([]string{"merge-base", "main", "develop"})
	p.Output("abc123\n")

	assert.Contains(t, out.String(), "$ git merge-base main develop")
	assert.Contains(t, out.String(), "abc123")
}

func TestCtx(t *testing.T) {
	p, _, _ := newTestPrinter()

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()))
}
