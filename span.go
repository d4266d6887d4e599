package termrb

// contCell overwrites the cell at (line,col) with a CONT marker pointing
// back at startCol, releasing whatever pen/text it previously owned.
// Grounded directly on renderbuffer.c's cont_cell.
func (rb *RenderBuffer) contCell(line, col, startCol int) {
	c := &rb.grid[line][col]
	c.release()
	c.state = stateCont
	c.maskDepth = -1
	c.startCol = startCol
}

// makeSpan carves out a run of cols cells starting at (line,col) so that
// a fresh span can be written into it: any run it overlaps at either edge
// is split so the remaining portion keeps a consistent start/CONT chain,
// then the whole range is converted to CONT before the caller fills in
// cell 0 of the range with the new state. Grounded on renderbuffer.c's
// make_span.
func (rb *RenderBuffer) makeSpan(line, col, cols int) *cell {
	row := rb.grid[line]
	end := col + cols

	// If the cell right after this span is a CONT, it must become a new
	// span start of its own (the tail end of whatever run it belonged to).
	if end < rb.cols && row[end].state == stateCont {
		spanStart := row[end].startCol
		spanCell := &row[spanStart]
		spanEnd := spanStart + spanCell.cols
		afterLen := spanEnd - end
		endCell := &row[end]

		switch spanCell.state {
		case stateSkip:
			endCell.state = stateSkip
			endCell.cols = afterLen
		case stateText:
			endCell.state = stateText
			endCell.cols = afterLen
			endCell.pen = spanCell.pen.Ref()
			endCell.text = spanCell.text.ref()
			endCell.textOff = spanCell.textOff + end - spanStart
		case stateErase:
			endCell.state = stateErase
			endCell.cols = afterLen
			endCell.pen = spanCell.pen.Ref()
		default:
			panic("termrb: makeSpan found LINE/CHAR/CONT cell as a span owner")
		}

		for c := end + 1; c < spanEnd; c++ {
			row[c].startCol = end
		}
	}

	// If the first cell of the new span is itself a CONT, shorten the run
	// it used to belong to.
	if row[col].state == stateCont {
		beforeStart := row[col].startCol
		spanCell := &row[beforeStart]
		beforeLen := col - beforeStart

		switch spanCell.state {
		case stateSkip, stateText, stateErase:
			spanCell.cols = beforeLen
		default:
			panic("termrb: makeSpan found LINE/CHAR/CONT cell as a span owner")
		}
	}

	for c := col; c < end; c++ {
		rb.contCell(line, c, col)
	}

	row[col].cols = cols
	return &row[col]
}
