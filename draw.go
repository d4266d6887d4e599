package termrb

import (
	"fmt"

	"github.com/cliofy/termrb/linechar"
)

// xlateAndClip maps a (line, col, cols) span through the active
// translate offset and clip rectangle, shrinking cols and advancing
// col/startCol as needed. It reports false if the span is entirely
// outside the clip (nothing to draw).
func (rb *RenderBuffer) xlateAndClip(line, col, cols int) (outLine, outCol, outCols, startCol int, ok bool) {
	line += rb.xlateLine
	col += rb.xlateCol

	clip := rb.clip
	if clip.Lines == 0 {
		return 0, 0, 0, 0, false
	}
	if line < clip.Top || line >= clip.Bottom() || col >= clip.Right() {
		return 0, 0, 0, 0, false
	}

	if col < clip.Left {
		cols -= clip.Left - col
		startCol += clip.Left - col
		col = clip.Left
	}
	if cols <= 0 {
		return 0, 0, 0, 0, false
	}
	if cols > clip.Right()-col {
		cols = clip.Right() - col
	}

	return line, col, cols, startCol, true
}

// iterateUnmaskedRuns walks the unmasked portions of [col, col+cols) on
// line, invoking fn(col, spanlen) for each maximal unmasked run.
// Masked gaps between runs are skipped over silently, matching every
// draw primitive's "skip over masked cells" loop in the original source.
func (rb *RenderBuffer) iterateUnmaskedRuns(line, col, cols int, fn func(col, spanlen int)) {
	row := rb.grid[line]
	for cols > 0 {
		for cols > 0 && row[col].masked() {
			col++
			cols--
		}
		if cols == 0 {
			break
		}

		spanlen := 0
		for cols > 0 && !row[col+spanlen].masked() {
			spanlen++
			cols--
		}
		if spanlen == 0 {
			break
		}

		fn(col, spanlen)
		col += spanlen
	}
}

// putString writes a shared string starting at (line,col), splitting it
// across unmasked runs as needed, and returns the number of columns it
// occupies (ignoring any truncation by clip/mask). ok is false if the
// starting point was entirely clipped away.
func (rb *RenderBuffer) putString(line, col int, text *sharedText) (cols int, ok bool) {
	cols = text.columns()
	ret := cols

	l, c, n, startCol, within := rb.xlateAndClip(line, col, cols)
	if !within {
		return ret, false
	}

	rb.iterateUnmaskedRuns(l, c, n, func(spanCol, spanlen int) {
		cell := rb.makeSpan(l, spanCol, spanlen)
		cell.state = stateText
		cell.pen = rb.pen.Ref()
		cell.text = text.ref()
		cell.textOff = startCol + (spanCol - c)
	})

	return ret, true
}

func (rb *RenderBuffer) putText(line, col int, s string) int {
	cols, _ := rb.putString(line, col, newSharedText(s))
	return cols
}

// putChar always occupies exactly one column in the grid, regardless of
// the codepoint's real display width (matching LINE cells, which are
// also always cols == 1): CHAR/LINE heads never own a CONT run. Callers
// that need to account for a wide rune's true width do so separately,
// in cursor-advance arithmetic only (see Char).
func (rb *RenderBuffer) putChar(line, col int, r rune) {
	l, c, n, _, within := rb.xlateAndClip(line, col, 1)
	if !within {
		return
	}
	if rb.grid[l][c].masked() {
		return
	}

	cell := rb.makeSpan(l, c, n)
	cell.state = stateChar
	cell.pen = rb.pen.Ref()
	cell.char = r
}

func (rb *RenderBuffer) skip(line, col, cols int) {
	l, c, n, _, within := rb.xlateAndClip(line, col, cols)
	if !within {
		return
	}

	rb.iterateUnmaskedRuns(l, c, n, func(spanCol, spanlen int) {
		cell := rb.makeSpan(l, spanCol, spanlen)
		cell.state = stateSkip
	})
}

func (rb *RenderBuffer) erase(line, col, cols int) {
	l, c, n, _, within := rb.xlateAndClip(line, col, cols)
	if !within {
		return
	}

	rb.iterateUnmaskedRuns(l, c, n, func(spanCol, spanlen int) {
		cell := rb.makeSpan(l, spanCol, spanlen)
		cell.state = stateErase
		cell.pen = rb.pen.Ref()
	})
}

// TextAt writes s starting at (line,col) and returns the number of
// columns it occupies.
func (rb *RenderBuffer) TextAt(line, col int, s string) int {
	cols := rb.putText(line, col, s)
	debugLogf(rb, catDraw, "Text (%d..%d,%d)", col, col+cols, line)
	return cols
}

// Text writes s at the virtual cursor and advances it by the text's
// column width. It returns -1 without drawing if the cursor has not
// been positioned.
func (rb *RenderBuffer) Text(s string) int {
	if !rb.vcPosSet {
		return -1
	}
	cols := rb.putText(rb.vcLine, rb.vcCol, s)
	debugLogf(rb, catDraw, "Text (%d..%d,%d) +%d", rb.vcCol, rb.vcCol+cols, rb.vcLine, cols)
	rb.vcCol += cols
	return cols
}

// TextF formats with fmt.Sprintf and writes the result at the virtual
// cursor, exactly like Text.
func (rb *RenderBuffer) TextF(format string, args ...interface{}) int {
	return rb.Text(fmt.Sprintf(format, args...))
}

// TextFAt formats with fmt.Sprintf and writes the result at (line,col),
// exactly like TextAt.
func (rb *RenderBuffer) TextFAt(line, col int, format string, args ...interface{}) int {
	return rb.TextAt(line, col, fmt.Sprintf(format, args...))
}

// EraseAt blanks cols columns starting at (line,col) using the current pen.
func (rb *RenderBuffer) EraseAt(line, col, cols int) {
	debugLogf(rb, catDraw, "Erase (%d..%d,%d)", col, col+cols, line)
	rb.erase(line, col, cols)
}

// Erase blanks cols columns from the virtual cursor and advances it.
// No-op if the cursor has not been positioned.
func (rb *RenderBuffer) Erase(cols int) {
	if !rb.vcPosSet {
		return
	}
	debugLogf(rb, catDraw, "Erase (%d..%d,%d) +%d", rb.vcCol, rb.vcCol+cols, rb.vcLine, cols)
	rb.erase(rb.vcLine, rb.vcCol, cols)
	rb.vcCol += cols
}

// EraseTo blanks from the virtual cursor up to (exclusive of) col and
// moves the cursor there. If col is behind the cursor nothing is erased
// but the cursor still moves to col. No-op if the cursor hasn't been
// positioned.
func (rb *RenderBuffer) EraseTo(col int) {
	if !rb.vcPosSet {
		return
	}
	if rb.vcCol < col {
		rb.erase(rb.vcLine, rb.vcCol, col-rb.vcCol)
	}
	rb.vcCol = col
}

// EraseRect blanks every line of rect.
func (rb *RenderBuffer) EraseRect(rect Rect) {
	debugLogf(rb, catDraw, "Erase %v", rect)
	for line := rect.Top; line < rect.Bottom(); line++ {
		rb.erase(line, rect.Left, rect.Cols)
	}
}

// SkipAt marks cols columns starting at (line,col) as untouched (SKIP),
// leaving whatever the terminal already shows there alone on flush.
func (rb *RenderBuffer) SkipAt(line, col, cols int) {
	debugLogf(rb, catDraw, "Skip (%d..%d,%d)", col, col+cols, line)
	rb.skip(line, col, cols)
}

// Skip marks cols columns from the virtual cursor as SKIP and advances it.
func (rb *RenderBuffer) Skip(cols int) {
	if !rb.vcPosSet {
		return
	}
	debugLogf(rb, catDraw, "Skip (%d..%d,%d) +%d", rb.vcCol, rb.vcCol+cols, rb.vcLine, cols)
	rb.skip(rb.vcLine, rb.vcCol, cols)
	rb.vcCol += cols
}

// SkipTo marks from the virtual cursor up to col as SKIP and moves the
// cursor there.
func (rb *RenderBuffer) SkipTo(col int) {
	if !rb.vcPosSet {
		return
	}
	if rb.vcCol < col {
		rb.skip(rb.vcLine, rb.vcCol, col-rb.vcCol)
	}
	rb.vcCol = col
}

// SkipRect marks every line of rect as SKIP.
func (rb *RenderBuffer) SkipRect(rect Rect) {
	debugLogf(rb, catDraw, "Skip %v", rect)
	for line := rect.Top; line < rect.Bottom(); line++ {
		rb.skip(line, rect.Left, rect.Cols)
	}
}

// CharAt draws a single codepoint at (line,col).
func (rb *RenderBuffer) CharAt(line, col int, r rune) {
	debugLogf(rb, catDraw, "Char (%d..%d,%d)", col, col+1, line)
	rb.putChar(line, col, r)
}

// Char draws a single codepoint at the virtual cursor and advances it by
// the codepoint's display width.
func (rb *RenderBuffer) Char(r rune) {
	if !rb.vcPosSet {
		return
	}
	width := runeColumns(r)
	if width <= 0 {
		width = 1
	}
	debugLogf(rb, catDraw, "Char (%d..%d,%d) +%d", rb.vcCol, rb.vcCol+width, rb.vcLine, width)
	rb.putChar(rb.vcLine, rb.vcCol, r)
	rb.vcCol += width
}

// LineCap selects which end(s) of a line primitive extend past the end
// cell's centre: a capped start or end cell also gets the arm pointing
// outward along the line's own direction (west/north at the start,
// east/south at the end).
type LineCap int

const (
	LineCapNone  LineCap = 0
	LineCapStart LineCap = 1 << 0
	LineCapEnd   LineCap = 1 << 1
	LineCapBoth          = LineCapStart | LineCapEnd
)

// lineCell ORs bits into the line-mask of the cell at (line,col),
// creating a LINE cell there if one doesn't already exist, and
// refreshing its pen if the active pen has changed since.
func (rb *RenderBuffer) lineCell(line, col, bits int) {
	l, c, n, _, within := rb.xlateAndClip(line, col, 1)
	if !within {
		return
	}
	if rb.grid[l][c].masked() {
		return
	}

	cell := &rb.grid[l][c]
	if cell.state != stateLine {
		cell = rb.makeSpan(l, c, n)
		cell.state = stateLine
		cell.cols = 1
		cell.pen = rb.pen.Ref()
		cell.lineMask = 0
	} else if !cell.pen.Equiv(rb.pen) {
		cell.pen.Unref()
		cell.pen = rb.pen.Ref()
	}

	cell.lineMask |= bits
}

// HLineAt draws a horizontal line of the given style from startCol to
// endCol (inclusive) on line, with caps controlling whether the
// endpoints also draw their outward arm (see LineCap).
func (rb *RenderBuffer) HLineAt(line, startCol, endCol int, style linechar.Style, caps LineCap) {
	debugLogf(rb, catDraw, "HLine (%d..%d,%d)", startCol, endCol, line)

	east := int(style) << linechar.EastShift
	west := int(style) << linechar.WestShift

	startWest := 0
	if caps&LineCapStart != 0 {
		startWest = west
	}
	rb.lineCell(line, startCol, east|startWest)

	for col := startCol + 1; col <= endCol-1; col++ {
		rb.lineCell(line, col, east|west)
	}

	endEast := 0
	if caps&LineCapEnd != 0 {
		endEast = east
	}
	rb.lineCell(line, endCol, endEast|west)
}

// VLineAt draws a vertical line of the given style from startLine to
// endLine (inclusive) in col, with caps controlling the endpoint arms.
func (rb *RenderBuffer) VLineAt(startLine, endLine, col int, style linechar.Style, caps LineCap) {
	debugLogf(rb, catDraw, "VLine (%d,%d..%d)", col, startLine, endLine)

	north := int(style) << linechar.NorthShift
	south := int(style) << linechar.SouthShift

	startNorth := 0
	if caps&LineCapStart != 0 {
		startNorth = north
	}
	rb.lineCell(startLine, col, south|startNorth)

	for line := startLine + 1; line <= endLine-1; line++ {
		rb.lineCell(line, col, south|north)
	}

	endSouth := 0
	if caps&LineCapEnd != 0 {
		endSouth = south
	}
	rb.lineCell(endLine, col, endSouth|north)
}
