package termrb

// HasCursorPos reports whether Goto has positioned the virtual cursor
// since the buffer was created or last Reset.
func (rb *RenderBuffer) HasCursorPos() bool {
	return rb.vcPosSet
}

// GetCursorPos returns the virtual cursor position. ok is false if the
// cursor has not been positioned.
func (rb *RenderBuffer) GetCursorPos() (line, col int, ok bool) {
	if !rb.vcPosSet {
		return 0, 0, false
	}
	return rb.vcLine, rb.vcCol, true
}

// Goto moves the virtual cursor. Subsequent Text/Erase/Skip/Char calls
// (the relative forms, without an _At suffix) draw from here and advance it.
func (rb *RenderBuffer) Goto(line, col int) {
	rb.vcPosSet = true
	rb.vcLine = line
	rb.vcCol = col
}

// Ungoto clears the virtual cursor position; relative drawing calls
// become no-ops until the next Goto.
func (rb *RenderBuffer) Ungoto() {
	rb.vcPosSet = false
}
