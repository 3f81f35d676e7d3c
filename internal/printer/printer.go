// Package printer writes styled status lines for the non-interactive commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/acrodrill/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human readable command output.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(prefix lipgloss.Style, mark, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if mark == "" {
		_, _ = fmt.Fprintln(p.out, msg)
		return
	}
	_, _ = fmt.Fprintln(p.out, prefix.Render(mark)+" "+msg)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(lipgloss.Style{}, "", format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.CorrectStyle, "✓", format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.PositionStyle, "•", format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle, "!", format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle, "✗", format, args...)
}

// Section writes a heading.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.out, styles.HeaderStyle.Render(title))
}

// CheckItem, WarnItem and FailItem write an indented list entry.
func (p *Printer) CheckItem(label, detail string) { p.item(styles.CorrectStyle, "✓", label, detail) }

func (p *Printer) WarnItem(label, detail string) { p.item(styles.WarningStyle, "!", label, detail) }

func (p *Printer) FailItem(label, detail string) { p.item(styles.ErrorStyle, "✗", label, detail) }

func (p *Printer) item(style lipgloss.Style, mark, label, detail string) {
	if detail == "" {
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", style.Render(mark), label)
		return
	}
	_, _ = fmt.Fprintf(p.out, "  %s %s: %s\n", style.Render(mark), label, detail)
}
