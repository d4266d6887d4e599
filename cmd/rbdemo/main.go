// Command rbdemo draws a small dashboard straight into a render buffer —
// text, a bordered box, a save/restore masked region and mixed pens — then
// flushes it to the real terminal, to exercise the library end to end the
// way a TUI application's render loop would.
package main

import (
	"fmt"
	"os"

	termrb "github.com/cliofy/termrb"
	"github.com/cliofy/termrb/linechar"
	"github.com/cliofy/termrb/pen"
	"github.com/cliofy/termrb/term"
	xterm "golang.org/x/term"
)

func getTerminalSize() (cols, lines int) {
	cols, lines, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || lines <= 0 {
		return 80, 24
	}
	return cols, lines
}

func drawBox(rb *termrb.RenderBuffer, top, left, lines, cols int) {
	rb.HLineAt(top, left, left+cols-1, linechar.Single, termrb.LineCapNone)
	rb.HLineAt(top+lines-1, left, left+cols-1, linechar.Single, termrb.LineCapNone)
	rb.VLineAt(top, top+lines-1, left, linechar.Single, termrb.LineCapNone)
	rb.VLineAt(top, top+lines-1, left+cols-1, linechar.Single, termrb.LineCapNone)
}

func main() {
	cols, lines := getTerminalSize()
	rb := termrb.New(lines, cols)
	defer rb.Unref()

	titlePen := pen.New()
	titlePen.Attrs = pen.Bold
	titlePen.Fg = pen.Color{Type: pen.ColorNamed, Named: pen.Cyan}

	rb.Clear()
	rb.Save()
	rb.SetPen(titlePen)
	rb.TextAt(0, 2, "termrb demo")
	rb.Restore()

	boxTop, boxLeft, boxLines, boxCols := 2, 2, 6, 30
	drawBox(rb, boxTop, boxLeft, boxLines, boxCols)

	bodyPen := pen.New()
	bodyPen.Fg = pen.Color{Type: pen.ColorNamed, Named: pen.Green}
	rb.Save()
	rb.SetPen(bodyPen)
	rb.TextAt(boxTop+2, boxLeft+2, fmt.Sprintf("%d x %d grid", lines, cols))
	rb.Restore()

	// a masked region inside the box: drawing underneath it is suppressed
	// until Restore lifts the mask again
	rb.Save()
	rb.Mask(termrb.NewRect(boxTop+3, boxLeft+2, 1, boxCols-4))
	rb.TextAt(boxTop+3, boxLeft+2, "hidden by mask")
	rb.Restore()
	rb.TextAt(boxTop+3, boxLeft+2, "visible after restore")

	driver := term.NewANSIDriver(os.Stdout)
	rb.FlushToTerm(driver)
	fmt.Println()

	if err := driver.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "rbdemo: write error:", err)
		os.Exit(1)
	}
}
