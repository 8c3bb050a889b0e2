// Package printer formats strmatch CLI output.
package printer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by New.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes matches and summaries to a single writer.
type Printer struct {
	out io.Writer

	path   *color.Color
	offset *color.Color
	match  *color.Color
	dim    *color.Color
	ok     *color.Color
	fail   *color.Color
	warn   *color.Color
}

// New returns a Printer writing to out. mode is one of ColorAuto,
// ColorAlways or ColorNever.
func New(out io.Writer, mode string) *Printer {
	p := &Printer{
		out:    out,
		path:   color.New(color.FgMagenta),
		offset: color.New(color.FgGreen),
		match:  color.New(color.FgRed, color.Bold),
		dim:    color.New(color.Faint),
		ok:     color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow),
	}

	enabled := UseColor(mode, out)
	for _, c := range []*color.Color{p.path, p.offset, p.match, p.dim, p.ok, p.fail, p.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// UseColor reports whether output to w should be colored. Auto mode colors
// only terminals and honors NO_COLOR.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Match prints one occurrence as "name:offset".
func (p *Printer) Match(name string, offset int) {
	fmt.Fprintf(p.out, "%s:%s\n", p.path.Sprint(name), p.offset.Sprint(offset))
}

// MatchContext prints one occurrence followed by up to context bytes of text
// on either side, with the match highlighted.
func (p *Printer) MatchContext(name string, offset, length, context int, text []byte) {
	lo := max(0, offset-context)
	hi := min(len(text), offset+length+context)
	end := min(len(text), offset+length)

	fmt.Fprintf(p.out, "%s:%s: %s%s%s\n",
		p.path.Sprint(name),
		p.offset.Sprint(offset),
		p.dim.Sprint(printable(text[lo:offset])),
		p.match.Sprint(printable(text[offset:end])),
		p.dim.Sprint(printable(text[end:hi])),
	)
}

// Count prints the number of occurrences found in name.
func (p *Printer) Count(name string, n int) {
	fmt.Fprintf(p.out, "%s:%d\n", p.path.Sprint(name), n)
}

// Header prints a section title.
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.out, p.path.Sprint(title))
}

// Result prints one row of an algorithm comparison.
func (p *Printer) Result(algorithm string, matches int, elapsed time.Duration, agrees bool) {
	status := p.ok.Sprint("ok")
	if !agrees {
		status = p.fail.Sprint("MISMATCH")
	}
	fmt.Fprintf(p.out, "  %-14s %8d %12s  %s\n", algorithm, matches, elapsed.Round(time.Microsecond), status)
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.warn.Sprintf("warning: "+format, args...))
}

// Error prints err as an error line.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, p.fail.Sprint("error: ")+err.Error())
}

// printable replaces control and non-ASCII bytes with '.'.
func printable(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c < 0x20 || c >= 0x7f {
			c = '.'
		}
		out[i] = c
	}
	return string(out)
}
