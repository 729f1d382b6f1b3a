// Package printer writes styled, line-oriented command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/folio/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to an output stream.
type Printer struct {
	out io.Writer
}

// New creates a printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Section writes a heading line.
func (p *Printer) Section(title string) {
	p.line(styles.CommandHeaderStyle.Render(title))
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.CheckPassStyle.Render("✔") + " " + fmt.Sprintf(format, args...))
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextMutedStyle.Render("•") + " " + fmt.Sprintf(format, args...))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.CheckWarnStyle.Render("!") + " " + fmt.Sprintf(format, args...))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.CheckFailStyle.Render("✘") + " " + fmt.Sprintf(format, args...))
}

// CheckItem writes a passing check with an optional detail.
func (p *Printer) CheckItem(label, detail string) {
	p.item(styles.CheckPassStyle.Render("✔"), label, detail)
}

// WarnItem writes a check that passed with a warning.
func (p *Printer) WarnItem(label, detail string) {
	p.item(styles.CheckWarnStyle.Render("!"), label, detail)
}

// FailItem writes a failed check.
func (p *Printer) FailItem(label, detail string) {
	p.item(styles.CheckFailStyle.Render("✘"), label, detail)
}

func (p *Printer) item(icon, label, detail string) {
	if detail == "" {
		p.line("  " + icon + " " + label)
		return
	}
	p.line("  " + icon + " " + label + styles.TextMutedStyle.Render(" ("+detail+")"))
}
