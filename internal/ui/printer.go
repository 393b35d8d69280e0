package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes themed, line-oriented output. Results and prompts go to
// out, failures and hints go to errOut.
type Printer struct {
	out, errOut io.Writer
	theme       Theme
	r           *lipgloss.Renderer
	st, est     Styles
}

func NewPrinter(out, errOut io.Writer, t Theme, mode ColorMode) *Printer {
	r := NewRenderer(out, mode, t)
	er := NewRenderer(errOut, mode, t)
	return &Printer{
		out:    out,
		errOut: errOut,
		theme:  t,
		r:      r,
		st:     NewStyles(r, t),
		est:    NewStyles(er, t),
	}
}

func (p *Printer) Theme() Theme { return p.theme }

// Renderer and Styles expose the stdout side for other front-ends.
func (p *Printer) Renderer() *lipgloss.Renderer { return p.r }
func (p *Printer) Styles() Styles               { return p.st }

// Title prints a bold heading line.
func (p *Printer) Title(s string) { fmt.Fprintln(p.out, p.st.Title.Render(s)) }

// Println prints s unstyled.
func (p *Printer) Println(s string) { fmt.Fprintln(p.out, s) }

// Blank prints an empty line.
func (p *Printer) Blank() { fmt.Fprintln(p.out) }

// Prompt prints s without a trailing newline.
func (p *Printer) Prompt(s string) { fmt.Fprint(p.out, p.st.Accent.Render(s)) }

// OK and Fail style only the symbol; msg may echo user text, which
// Render would alter (tabs become spaces).
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.st.Success.Render(p.theme.SymOK)+" "+msg)
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errOut, p.est.Fail.Render(p.theme.SymFail)+" "+msg)
}

// Hint prints a muted follow-up to a failure.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.errOut, p.est.Muted.Render(msg))
}
