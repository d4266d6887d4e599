package termrb

import "github.com/cliofy/termrb/pen"

// stackFrame is one level of the save/restore stack. penOnly marks a
// frame pushed by SavePen: Restore on such a frame puts back the pen
// and leaves the cursor, translate offset and clip alone. Masks applied
// since the SavePen are still lifted, as for any Restore.
type stackFrame struct {
	vcLine, vcCol       int
	xlateLine, xlateCol int
	clip                Rect
	pen                 *pen.Pen
	penOnly             bool
}

// Translate shifts the virtual origin drawing coordinates are mapped
// through before clipping.
func (rb *RenderBuffer) Translate(downward, rightward int) {
	debugLogf(rb, catTranslate, "Translate (%+d,%+d)", rightward, downward)
	rb.xlateLine += downward
	rb.xlateCol += rightward
}

// Clip intersects the active clip rectangle with rect (translated by the
// current origin). Drawing outside the resulting rectangle is discarded.
func (rb *RenderBuffer) Clip(rect Rect) {
	debugLogf(rb, catTranslate, "Clip %v", rect)

	other := rect.Translate(rb.xlateLine, rb.xlateCol)
	result := rb.clip.Intersect(other)
	if result.Empty() {
		result.Lines = 0
	}
	rb.clip = result
}

// Mask hides the given rectangle (translated by the current origin) from
// drawing, without discarding whatever was already in those cells;
// FlushToTerm still emits that existing content. Restore un-hides it
// once the mask's save depth is popped.
func (rb *RenderBuffer) Mask(mask Rect) {
	debugLogf(rb, catTranslate, "Mask %v", mask)

	hole := mask.Translate(rb.xlateLine, rb.xlateCol)
	if hole.Top < 0 {
		hole.Lines += hole.Top
		hole.Top = 0
	}
	if hole.Left < 0 {
		hole.Cols += hole.Left
		hole.Left = 0
	}

	for line := hole.Top; line < hole.Bottom() && line < rb.lines; line++ {
		for col := hole.Left; col < hole.Right() && col < rb.cols; col++ {
			c := &rb.grid[line][col]
			if c.maskDepth == -1 {
				c.maskDepth = rb.depth
			}
		}
	}
}

// SetPen replaces the active pen with the merge of p over the pen
// captured by the most recent Save/SavePen frame (or over a default pen
// if the stack is empty): p's explicitly-set fields win, and everything
// it leaves at zero value falls through to the frame's pen. The pen
// active before the call is not part of the merge. p is never mutated
// or retained; the render buffer always holds its own pen.
func (rb *RenderBuffer) SetPen(p *pen.Pen) {
	var prev *pen.Pen
	if len(rb.stack) > 0 {
		prev = rb.stack[len(rb.stack)-1].pen
	}

	newPen := pen.Merge(prev, p)

	rb.pen.Unref()
	rb.pen = newPen
}

// Save pushes the drawing state (cursor position, translate, clip, pen)
// so it can later be restored with Restore. Whether the cursor is set is
// not saved: Restore puts back the cursor's line and column but leaves
// HasCursorPos as it is.
func (rb *RenderBuffer) Save() {
	debugLogf(rb, catStack, "+-Save")

	rb.stack = append(rb.stack, stackFrame{
		vcLine:    rb.vcLine,
		vcCol:     rb.vcCol,
		xlateLine: rb.xlateLine,
		xlateCol:  rb.xlateCol,
		clip:      rb.clip,
		pen:       rb.pen.Ref(),
	})
	rb.depth++
}

// SavePen pushes only the pen; a matching Restore leaves the cursor,
// translate offset and clip untouched, but still lifts masks applied
// since the SavePen.
func (rb *RenderBuffer) SavePen() {
	debugLogf(rb, catStack, "+-Savepen")

	rb.stack = append(rb.stack, stackFrame{
		pen:     rb.pen.Ref(),
		penOnly: true,
	})
	rb.depth++
}

// Restore pops the most recently pushed frame, restoring its state. It
// is a no-op if the stack is empty. Masks applied since the popped frame
// was pushed (deeper than the depth restored to) are lifted.
func (rb *RenderBuffer) Restore() {
	if len(rb.stack) == 0 {
		return
	}

	frame := rb.stack[len(rb.stack)-1]
	rb.stack = rb.stack[:len(rb.stack)-1]

	if !frame.penOnly {
		rb.vcLine = frame.vcLine
		rb.vcCol = frame.vcCol
		rb.xlateLine = frame.xlateLine
		rb.xlateCol = frame.xlateCol
		rb.clip = frame.clip
	}

	rb.pen.Unref()
	rb.pen = frame.pen

	rb.depth--

	// O(lines*cols) sweep, same as libtickit: simpler than tracking each
	// mask's rectangle, and masking is not a hot path.
	for line := 0; line < rb.lines; line++ {
		for col := 0; col < rb.cols; col++ {
			if rb.grid[line][col].maskDepth > rb.depth {
				rb.grid[line][col].maskDepth = -1
			}
		}
	}

	debugLogf(rb, catStack, "+-Restore")
}

// Reset discards all drawing state: the grid returns to all-skip, the
// cursor is ungoto'd, translate/clip/mask reset to identity, the pen
// resets to default, and the save stack is emptied. FlushToTerm calls
// this after every flush.
func (rb *RenderBuffer) Reset() {
	for line := 0; line < rb.lines; line++ {
		row := rb.grid[line]
		for col := range row {
			rb.contCell(line, col, 0)
		}
		row[0].state = stateSkip
		row[0].maskDepth = -1
		row[0].cols = rb.cols
	}

	rb.vcPosSet = false
	rb.xlateLine = 0
	rb.xlateCol = 0
	rb.clip = NewRect(0, 0, rb.lines, rb.cols)

	rb.pen.Unref()
	rb.pen = pen.New()

	for _, frame := range rb.stack {
		frame.pen.Unref()
	}
	rb.stack = nil
	rb.depth = 0
}
