// Package ui prints pipeline progress to stderr. Every line is prefixed with
// the elapsed time since the printer was created.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes elapsed-time-prefixed status lines.
type Printer struct {
	out     io.Writer
	start   time.Time
	verbose bool
}

// New returns a Printer writing to stderr with the clock started now.
func New(verbose bool) *Printer {
	return &Printer{out: os.Stderr, start: time.Now(), verbose: verbose}
}

// NewWithWriter is like New but writes to w. Used by tests.
func NewWithWriter(w io.Writer, verbose bool) *Printer {
	return &Printer{out: w, start: time.Now(), verbose: verbose}
}

func (p *Printer) prefix() string {
	return fmt.Sprintf(dim+"[%6.2fs]"+reset+" ", time.Since(p.start).Seconds())
}

// Step reports the start of a pipeline stage.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.out, p.prefix()+cyan+"▶ "+reset+format+"\n", args...)
}

// Done reports successful completion.
func (p *Printer) Done(format string, args ...any) {
	fmt.Fprintf(p.out, p.prefix()+green+bold+"✓ "+reset+format+"\n", args...)
}

// Warn reports a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.out, p.prefix()+yellow+"⚠ "+reset+format+"\n", args...)
}

// Error reports a fatal problem.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.out, p.prefix()+red+bold+"✗ error: "+reset+format+"\n", args...)
}

// Debug reports detail lines shown only in verbose mode.
func (p *Printer) Debug(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.out, p.prefix()+dim+format+reset+"\n", args...)
}
