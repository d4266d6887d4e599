// Package term defines the narrow terminal driver contract FlushToTerm
// speaks, plus two concrete implementations: ANSIDriver, which writes
// real escape sequences to an io.Writer, and BufferDriver, an in-memory
// grid useful for tests and for capturing what a flush would have drawn.
package term

import "github.com/cliofy/termrb/pen"

// Driver is the set of primitive operations a render buffer flush needs
// from a terminal: position the cursor, select a pen, print bytes, and
// erase columns. It deliberately knows nothing about spans, masks or
// pens-as-a-stack; all of that lives in the render buffer above it.
type Driver interface {
	// Goto moves the terminal's physical cursor to (line, col).
	Goto(line, col int)

	// SetPen selects the pen that subsequent Print/EraseColumns calls
	// render with. A nil pen means "default attributes".
	SetPen(p *pen.Pen)

	// Print writes b at the current cursor position and advances it by
	// b's display width.
	Print(b []byte)

	// EraseColumns blanks n columns from the current cursor position.
	// When moveEnd is true the cursor must end up just past the erased
	// columns; when it is false the caller does not rely on where the
	// cursor ends up and repositions it before the next write.
	EraseColumns(n int, moveEnd bool)
}
