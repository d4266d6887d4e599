package termrb

import (
	"github.com/cliofy/termrb/linechar"
	"github.com/cliofy/termrb/pen"
)

// getSpan resolves (line,col) through translate/clip to the cell that
// owns the run covering it, following a CONT cell back to its span
// start, and reports the column offset of (line,col) within that run.
func (rb *RenderBuffer) getSpan(line, col int) (c *cell, offset int, ok bool) {
	l, cc, _, _, within := rb.xlateAndClip(line, col, 1)
	if !within {
		return nil, 0, false
	}

	cell := &rb.grid[l][cc]
	if cell.state == stateCont {
		offset = cc - cell.startCol
		cell = &rb.grid[l][cell.startCol]
	}
	return cell, offset, true
}

// GetCellActive reports whether the cell at (line,col) holds drawn
// content (anything but SKIP). ok is false if the position is clipped away.
func (rb *RenderBuffer) GetCellActive(line, col int) (active, ok bool) {
	c, _, within := rb.getSpan(line, col)
	if !within {
		return false, false
	}
	return c.state != stateSkip, true
}

// GetCellText returns the single grapheme cluster drawn at (line,col).
// ok is false if the position is clipped away; the returned string is
// empty for SKIP/ERASE cells.
func (rb *RenderBuffer) GetCellText(line, col int) (text string, ok bool) {
	c, offset, within := rb.getSpan(line, col)
	if !within {
		return "", false
	}

	switch c.state {
	case stateSkip, stateErase:
		return "", true
	case stateText:
		start, end := c.text.graphemeByteRangeAtColumn(c.textOff + offset)
		return c.text.s[start:end], true
	case stateLine:
		return string(linechar.ToRune(c.lineMask)), true
	case stateChar:
		return string(c.char), true
	default:
		return "", true
	}
}

// GetCellLineMask returns the packed direction mask of the LINE cell at
// (line,col), or 0 if the cell isn't a LINE cell or is clipped away.
func (rb *RenderBuffer) GetCellLineMask(line, col int) int {
	c, _, within := rb.getSpan(line, col)
	if !within || c.state != stateLine {
		return 0
	}
	return c.lineMask
}

// GetCellPen returns the pen active at (line,col), or nil for SKIP cells
// or positions clipped away.
func (rb *RenderBuffer) GetCellPen(line, col int) *pen.Pen {
	c, _, within := rb.getSpan(line, col)
	if !within || c.state == stateSkip {
		return nil
	}
	return c.pen
}

// SpanInfo describes the run returned by GetSpan.
type SpanInfo struct {
	Columns  int
	IsActive bool
	Pen      *pen.Pen
}

// GetSpan returns the run starting at or covering (line,startCol): its
// width in columns from that offset, whether it's active (drawn) content,
// its pen, and (for TEXT/CHAR/LINE cells) its textual representation.
// ok is false if the position is clipped away.
func (rb *RenderBuffer) GetSpan(line, startCol int) (info SpanInfo, text string, ok bool) {
	c, offset, within := rb.getSpan(line, startCol)
	if !within {
		return SpanInfo{}, "", false
	}

	info.Columns = c.cols - offset

	if c.state == stateSkip {
		return info, "", true
	}

	info.IsActive = true
	info.Pen = c.pen

	switch c.state {
	case stateErase:
		return info, "", true
	case stateText:
		start, end := c.text.byteRangeForColumns(c.textOff+offset, c.cols-offset)
		return info, c.text.s[start:end], true
	case stateLine:
		return info, string(linechar.ToRune(c.lineMask)), true
	case stateChar:
		return info, string(c.char), true
	default:
		return info, "", true
	}
}
