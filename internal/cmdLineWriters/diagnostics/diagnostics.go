package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes operator facing problems, normally to stderr. None of them
// stop a scan.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(p.out, color.RedString("error: %s", err.Error()))
}

func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.out, color.RedString("error: "+format, args...))
}

func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.out, color.YellowString("warning: "+format, args...))
}
