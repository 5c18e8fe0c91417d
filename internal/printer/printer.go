// Package printer writes styled command output. Lookup and validation
// outcomes go through here so they read consistently and never turn
// into non-zero exits.
package printer

import (
	"fmt"
	"io"

	"github.com/colonyops/paratrooper/internal/core/styles"
)

// Printer writes user-facing lines to a command's writer.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Line(args ...any) {
	_, _ = fmt.Fprintln(p.w, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, styles.StyleSuccess.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, styles.StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, styles.StyleError.Render(fmt.Sprintf(format, args...)))
}
