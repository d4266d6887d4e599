package termrb

import "github.com/cliofy/termrb/pen"

// cellState is the kind of content a single cell in the grid holds.
type cellState int

const (
	// stateSkip marks a cell nothing has drawn into: flush leaves the
	// terminal's existing contents alone there.
	stateSkip cellState = iota
	// stateText marks the first cell of a run of display columns backed
	// by a shared UTF-8 string.
	stateText
	// stateErase marks a run of columns explicitly cleared to blank.
	stateErase
	// stateCont marks a cell that is the Nth column of a wider run
	// (SKIP, TEXT or ERASE); it points back at the run's start. LINE and
	// CHAR runs are always one column wide and have no CONT cells.
	stateCont
	// stateLine marks a cell drawn by the line-drawing primitive.
	stateLine
	// stateChar marks a cell holding a single codepoint.
	stateChar
)

// cell is one grid position. It mirrors libtickit's RBCell: a tagged union
// where the active fields depend on state.
type cell struct {
	state cellState

	// startCol holds, for stateCont, the column where the run this cell
	// continues begins. For every other state cols holds the width in
	// columns of the run starting at this cell.
	startCol int
	cols     int

	// maskDepth is the stack depth at which this cell was masked off, or
	// -1 if it isn't currently masked. Drawing primitives leave a masked
	// cell's content alone; flush does not look at it. Restore sets it
	// back to -1 once the stack pops back above its depth.
	maskDepth int

	pen *pen.Pen // nil for stateSkip and stateCont

	// text is populated for stateText.
	text    *sharedText
	textOff int // column offset into text.s where this run starts

	// lineMask is populated for stateLine: a packed linechar.Mask value.
	lineMask int

	// char is populated for stateChar.
	char rune
}

// newSkipCell returns a fresh, unmasked empty cell.
func newSkipCell() cell {
	return cell{state: stateSkip, maskDepth: -1}
}

// release drops this cell's references to its pen and shared text before
// the cell is overwritten or the buffer is freed.
func (c *cell) release() {
	if c.pen != nil {
		c.pen.Unref()
		c.pen = nil
	}
	if c.text != nil {
		c.text.unref()
		c.text = nil
	}
}

// masked reports whether this cell is currently hidden by an active mask.
func (c *cell) masked() bool {
	return c.maskDepth >= 0
}
