// Package termrb implements a cell-grid render buffer: an intermediate
// drawing surface that batches text, erase, line and character writes
// behind a translate/clip/mask/pen pipeline, then flushes the minimal set
// of terminal driver calls needed to realize them.
package termrb

import "github.com/cliofy/termrb/pen"

// RenderBuffer is a lines x cols grid of cells. Drawing calls never touch
// a terminal directly; they accumulate into the grid, which FlushToTerm
// later walks to emit driver calls.
type RenderBuffer struct {
	lines, cols int
	grid        [][]cell

	vcPosSet    bool
	vcLine      int
	vcCol       int
	xlateLine   int
	xlateCol    int
	clip        Rect
	pen         *pen.Pen

	depth int
	stack []stackFrame

	refcount int
}

// New allocates a render buffer of the given size. Every cell starts
// unmasked and empty (stateSkip).
func New(lines, cols int) *RenderBuffer {
	rb := &RenderBuffer{
		lines:    lines,
		cols:     cols,
		clip:     NewRect(0, 0, lines, cols),
		pen:      pen.New(),
		refcount: 1,
	}

	rb.grid = make([][]cell, lines)
	for line := range rb.grid {
		row := make([]cell, cols)
		if cols > 0 {
			row[0] = newSkipCell()
			row[0].cols = cols
		}
		for col := 1; col < cols; col++ {
			row[col] = cell{state: stateCont, maskDepth: -1, startCol: 0}
		}
		rb.grid[line] = row
	}

	return rb
}

// Ref increments the buffer's reference count and returns rb, for callers
// that want to hold a shared handle.
func (rb *RenderBuffer) Ref() *RenderBuffer {
	rb.refcount++
	return rb
}

// Unref decrements the reference count. It panics if called more times
// than the buffer has been referenced, the same invariant libtickit
// enforces by aborting.
func (rb *RenderBuffer) Unref() {
	if rb.refcount < 1 {
		panic("termrb: RenderBuffer Unref with invalid refcount")
	}
	rb.refcount--
	if rb.refcount == 0 {
		rb.destroy()
	}
}

func (rb *RenderBuffer) destroy() {
	for _, row := range rb.grid {
		for i := range row {
			row[i].release()
		}
	}
	rb.grid = nil
	rb.pen.Unref()

	for _, frame := range rb.stack {
		frame.pen.Unref()
	}
	rb.stack = nil
}

// GetSize returns the buffer's dimensions.
func (rb *RenderBuffer) GetSize() (lines, cols int) {
	return rb.lines, rb.cols
}

// Clear erases every cell in the buffer using the current pen.
func (rb *RenderBuffer) Clear() {
	debugLogf(rb, catDraw, "Clear")
	for line := 0; line < rb.lines; line++ {
		rb.erase(line, 0, rb.cols)
	}
}
