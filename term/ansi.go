package term

import (
	"fmt"
	"io"

	"github.com/cliofy/termrb/pen"
)

// ANSIDriver emits real xterm-compatible escape sequences to an
// io.Writer. Grounded on libtickit's xterm driver (termdriver-xterm.c):
// goto_abs's line/col special-casing and erasech's ECH sequence.
type ANSIDriver struct {
	w        io.Writer
	curPen   *pen.Pen
	penIsSet bool
	err      error
}

// NewANSIDriver wraps w. Errors from individual Print/Goto/etc. calls
// are sticky; call Err after a sequence of calls to check whether any of
// them failed.
func NewANSIDriver(w io.Writer) *ANSIDriver {
	return &ANSIDriver{w: w}
}

// Err returns the first write error encountered, if any.
func (d *ANSIDriver) Err() error {
	return d.err
}

func (d *ANSIDriver) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}

// Goto moves the cursor with CUP (or the column/line-only forms when one
// axis isn't changing), matching goto_abs's special cases for line==-1
// or col==-1.
func (d *ANSIDriver) Goto(line, col int) {
	switch {
	case line != -1 && col > 0:
		d.write(fmt.Sprintf("\x1b[%d;%dH", line+1, col+1))
	case line != -1 && col == 0:
		d.write(fmt.Sprintf("\x1b[%dH", line+1))
	case line != -1:
		d.write(fmt.Sprintf("\x1b[%dd", line+1))
	case col > 0:
		d.write(fmt.Sprintf("\x1b[%dG", col+1))
	default:
		d.write("\x1b[G")
	}
}

// SetPen emits an SGR reset followed by the pen's rendering, skipping
// the whole sequence if the pen is unchanged from the last call.
func (d *ANSIDriver) SetPen(p *pen.Pen) {
	if d.penIsSet && d.curPen.Equiv(p) {
		return
	}
	d.curPen = p
	d.penIsSet = true

	sgr := p.SGR()
	if sgr == "" {
		d.write("\x1b[0m")
		return
	}
	d.write("\x1b[0;" + sgr + "m")
}

// Print writes b verbatim at the cursor.
func (d *ANSIDriver) Print(b []byte) {
	if d.err != nil {
		return
	}
	_, d.err = d.w.Write(b)
}

// EraseColumns blanks n columns with ECH (Erase CHaracter). ECH never
// moves the cursor, so when moveEnd is set a CUF (Cursor Forward) follows
// it to leave the cursor just past the erased columns.
func (d *ANSIDriver) EraseColumns(n int, moveEnd bool) {
	if n < 1 {
		return
	}
	if n == 1 {
		d.write("\x1b[X")
	} else {
		d.write(fmt.Sprintf("\x1b[%dX", n))
	}
	if moveEnd {
		d.write(fmt.Sprintf("\x1b[%dC", n))
	}
}
