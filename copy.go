package termrb

// copyRect copies srcRect from src into dstRect's origin within dst
// (both rects must be the same size; only their origins differ), cell by
// cell, reapplying each source cell's pen via save/setpen/restore so the
// copy doesn't disturb dst's active pen. If copySkip is false, SKIP cells
// are simply not written (used by Blit, which must not clobber dst's
// existing content where src has nothing drawn).
//
// Iteration direction flips when src and dst are the same buffer and the
// rectangles overlap, so a downward/rightward copy doesn't read cells
// already overwritten by an earlier iteration. Grounded on
// renderbuffer.c's copyrect.
func copyRect(dst, src *RenderBuffer, dstRect, srcRect Rect, copySkip bool) {
	if srcRect.Lines == 0 || srcRect.Cols == 0 {
		return
	}

	lineOffs := dstRect.Top - srcRect.Top
	colOffs := dstRect.Left - srcRect.Left

	sameRB := dst == src
	if sameRB && lineOffs == 0 && colOffs == 0 {
		return
	}

	upwards := sameRB && lineOffs > 0
	leftwards := sameRB && lineOffs == 0 && colOffs > 0

	bottom := srcRect.Bottom()
	right := srcRect.Right()

	lineStart, lineEnd, lineStep := srcRect.Top, bottom, 1
	if upwards {
		lineStart, lineEnd, lineStep = bottom-1, srcRect.Top-1, -1
	}

	for line := lineStart; line != lineEnd; line += lineStep {
		col := srcRect.Left
		if leftwards {
			col = right - 1
		}

		for (leftwards && col >= srcRect.Left) || (!leftwards && col < right) {
			c := &src.grid[line][col]
			offset := 0

			if c.state == stateCont {
				startCol := c.startCol
				c = &src.grid[line][startCol]

				if leftwards {
					col = startCol
					if col < srcRect.Left {
						col = srcRect.Left
					}
				}
				offset = col - startCol
			}

			cols := c.cols - offset
			if col+cols > right {
				cols = right - col
			}

			if c.state != stateSkip {
				dst.SavePen()
				dst.SetPen(c.pen)
			}

			switch c.state {
			case stateSkip:
				if copySkip {
					dst.skip(line+lineOffs, col+colOffs, cols)
				}
			case stateText:
				start, end := c.text.byteRangeForColumns(c.textOff+offset, cols)
				if start > 0 || end < len(c.text.s) {
					dst.putText(line+lineOffs, col+colOffs, c.text.s[start:end])
				} else {
					dst.putString(line+lineOffs, col+colOffs, c.text)
				}
			case stateErase:
				dst.erase(line+lineOffs, col+colOffs, cols)
			case stateLine:
				dst.lineCell(line+lineOffs, col+colOffs, c.lineMask)
			case stateChar:
				dst.putChar(line+lineOffs, col+colOffs, c.char)
			case stateCont:
				panic("termrb: copyRect found CONT after resolving span start")
			}

			if c.state != stateSkip {
				dst.Restore()
			}

			if leftwards {
				col--
			} else {
				col += cols
			}
		}
	}
}

// Blit copies every cell of src into dst at the same coordinates,
// leaving dst's existing content in place wherever src has a SKIP cell.
// dst and src must be the same size.
func (rb *RenderBuffer) Blit(src *RenderBuffer) {
	full := NewRect(0, 0, src.lines, src.cols)
	copyRect(rb, src, full, full, false)
}

// CopyRect copies src (a rectangle within rb) to dst (a same-sized
// rectangle within rb), including SKIP cells.
func (rb *RenderBuffer) CopyRect(dst, src Rect) {
	copyRect(rb, rb, dst, src, true)
}

// MoveRect copies src to dst within rb, then marks whatever part of src
// was not overwritten by the destination as SKIP, so a subsequent flush
// doesn't redraw content that moved away.
func (rb *RenderBuffer) MoveRect(dst, src Rect) {
	copyRect(rb, rb, dst, src, true)

	vacated := src.Subtract(NewRect(dst.Top, dst.Left, src.Lines, src.Cols))
	for _, rect := range vacated {
		rb.SkipRect(rect)
	}
}
