package termrb

import (
	"strings"

	"github.com/cliofy/termrb/linechar"
	"github.com/cliofy/termrb/term"
)

// FlushToTerm walks the grid and emits the minimal set of driver calls
// needed to realize it: SKIP runs are left alone, adjacent LINE cells
// sharing a pen are coalesced into a single Print, and the cursor is
// only re-positioned with Goto when the physical column has drifted from
// where the last write left it. The buffer is Reset once flushing
// completes, since a flushed buffer has nothing left to say about the
// terminal's new state.
func (rb *RenderBuffer) FlushToTerm(driver term.Driver) {
	debugLogf(rb, catFlush, "Flush to term")

	for line := 0; line < rb.lines; line++ {
		phycol := -1 // column where the terminal's cursor physically sits, -1 if unknown
		row := rb.grid[line]

		for col := 0; col < rb.cols; {
			c := &row[col]

			if c.state == stateSkip {
				col += c.cols
				continue
			}

			if phycol < col {
				driver.Goto(line, col)
			}
			phycol = col

			switch c.state {
			case stateText:
				start, end := c.text.byteRangeForColumns(c.textOff, c.cols)
				driver.SetPen(c.pen)
				driver.Print([]byte(c.text.s[start:end]))
				phycol += c.cols

			case stateErase:
				moveEnd := col+c.cols < rb.cols && row[col+c.cols].state != stateSkip
				driver.SetPen(c.pen)
				driver.EraseColumns(c.cols, moveEnd)
				if moveEnd {
					phycol += c.cols
				} else {
					phycol = -1
				}

			case stateLine:
				var sb strings.Builder
				runPen := c.pen
				for {
					sb.WriteRune(linechar.ToRune(c.lineMask))
					col++
					phycol += c.cols
					if col >= rb.cols {
						break
					}
					c = &row[col]
					if c.state != stateLine || !c.pen.Equiv(runPen) {
						break
					}
				}
				driver.SetPen(runPen)
				driver.Print([]byte(sb.String()))
				continue // col already advanced

			case stateChar:
				driver.SetPen(c.pen)
				driver.Print([]byte(string(c.char)))
				phycol += c.cols

			default:
				panic("termrb: FlushToTerm encountered SKIP/CONT mid-span")
			}

			col += c.cols
		}
	}

	rb.Reset()
}
