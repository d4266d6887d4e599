package term

import (
	"strings"

	"github.com/cliofy/termrb/pen"
)

// cell is a single printed position in a BufferDriver's grid.
type cell struct {
	r   rune
	pen *pen.Pen
}

// row is one line of a BufferDriver's grid, adapted from the row width/
// truncate/ensure-width bookkeeping a VTE-driven terminal buffer needs,
// repurposed here to back a driver rather than a VTE Performer.
type row struct {
	cells []cell
}

func newRow(width int) row {
	cells := make([]cell, width)
	for i := range cells {
		cells[i] = cell{r: ' '}
	}
	return row{cells: cells}
}

func (r *row) ensureWidth(width int) {
	for len(r.cells) < width {
		r.cells = append(r.cells, cell{r: ' '})
	}
}

func (r *row) string() string {
	var sb strings.Builder
	for _, c := range r.cells {
		sb.WriteRune(c.r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// BufferDriver is an in-memory Driver: it records what a flush would
// have drawn in a plain grid of runes and pens, queryable for tests and
// for demo programs that want to capture a frame without a real
// terminal. Adapted from the row/cursor bookkeeping of a VTE-driven
// terminal buffer, driven instead by the render buffer's Driver calls.
type BufferDriver struct {
	rows        []row
	lines, cols int

	curLine, curCol int
	curPen          *pen.Pen
}

// NewBufferDriver allocates a lines x cols buffer driver, every cell
// blank.
func NewBufferDriver(lines, cols int) *BufferDriver {
	bd := &BufferDriver{lines: lines, cols: cols}
	bd.rows = make([]row, lines)
	for i := range bd.rows {
		bd.rows[i] = newRow(cols)
	}
	return bd
}

func (bd *BufferDriver) Goto(line, col int) {
	if line >= 0 {
		bd.curLine = line
	}
	if col >= 0 {
		bd.curCol = col
	}
}

func (bd *BufferDriver) SetPen(p *pen.Pen) {
	bd.curPen = p
}

// Print writes the runes of b at the cursor, advancing it one column per
// rune: every rune takes a single grid cell, wide runes included. Rows
// written past their initial width grow to fit (mirroring row.go's
// EnsureWidth).
func (bd *BufferDriver) Print(b []byte) {
	if bd.curLine < 0 || bd.curLine >= len(bd.rows) {
		return
	}
	row := &bd.rows[bd.curLine]

	for _, r := range string(b) {
		row.ensureWidth(bd.curCol + 1)
		row.cells[bd.curCol] = cell{r: r, pen: bd.curPen}
		bd.curCol++
	}
}

// EraseColumns blanks n columns from the cursor. If moveEnd is true the
// cursor advances past the erased region; otherwise it stays where it
// was (the render buffer treats its position as unknown in that case).
func (bd *BufferDriver) EraseColumns(n int, moveEnd bool) {
	if bd.curLine < 0 || bd.curLine >= len(bd.rows) || n < 1 {
		return
	}
	row := &bd.rows[bd.curLine]
	row.ensureWidth(bd.curCol + n)
	for i := 0; i < n; i++ {
		row.cells[bd.curCol+i] = cell{r: ' ', pen: bd.curPen}
	}
	if moveEnd {
		bd.curCol += n
	}
}

// Line returns the trimmed text of line n.
func (bd *BufferDriver) Line(n int) string {
	if n < 0 || n >= len(bd.rows) {
		return ""
	}
	return bd.rows[n].string()
}

// String renders every line, joined by newlines, trailing blank lines
// included.
func (bd *BufferDriver) String() string {
	lines := make([]string, len(bd.rows))
	for i, r := range bd.rows {
		lines[i] = r.string()
	}
	return strings.Join(lines, "\n")
}

// CellPen returns the pen active at (line,col), or nil if nothing was
// ever printed there.
func (bd *BufferDriver) CellPen(line, col int) *pen.Pen {
	if line < 0 || line >= len(bd.rows) {
		return nil
	}
	r := &bd.rows[line]
	if col < 0 || col >= len(r.cells) {
		return nil
	}
	return r.cells[col].pen
}
