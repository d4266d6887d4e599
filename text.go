package termrb

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// sharedText is an immutable, reference-counted UTF-8 string. TEXT cells
// hold an offset into one of these rather than copying the bytes, so a
// single put_string call that spans many spans (after masking splits it
// up) shares one underlying allocation.
type sharedText struct {
	s        string
	cols     []int // column at which each rune starts (width of all runes before it)
	byteOffs []int // byte offset of each rune
	refcount int
}

// newSharedText wraps s, precomputing a rune -> (byte offset, column)
// table used to translate between column offsets and byte ranges without
// rescanning the string on every span write.
func newSharedText(s string) *sharedText {
	t := &sharedText{s: s, refcount: 1}

	col := 0
	for i, r := range s {
		t.byteOffs = append(t.byteOffs, i)
		t.cols = append(t.cols, col)
		col += runewidth.RuneWidth(r)
	}
	t.byteOffs = append(t.byteOffs, len(s)) // sentinel: end of string
	t.cols = append(t.cols, col)

	return t
}

func (t *sharedText) ref() *sharedText {
	if t == nil {
		return nil
	}
	t.refcount++
	return t
}

func (t *sharedText) unref() {
	if t == nil {
		return
	}
	if t.refcount <= 0 {
		panic("termrb: sharedText unref with refcount already at zero")
	}
	t.refcount--
}

// columns returns the total display width of the string.
func (t *sharedText) columns() int {
	if t == nil || len(t.cols) == 0 {
		return 0
	}
	return t.cols[len(t.cols)-1]
}

// byteRangeForColumns returns the byte offset range [start,end) of the
// substring covering display columns [fromCol, fromCol+n).
func (t *sharedText) byteRangeForColumns(fromCol, n int) (start, end int) {
	start = t.byteOffsetAtColumn(fromCol)
	end = t.byteOffsetAtColumn(fromCol + n)
	return
}

func (t *sharedText) byteOffsetAtColumn(col int) int {
	// cols is monotonic non-decreasing; find the first rune whose column
	// equals or exceeds col.
	for i, c := range t.cols {
		if c >= col {
			return t.byteOffs[i]
		}
	}
	return len(t.s)
}

// graphemeByteRangeAtColumn returns the byte range of exactly one grapheme
// cluster beginning at display column col within the string, consulting
// uniseg for cluster boundaries (a single column offset may land in the
// middle of a combining-character sequence).
func (t *sharedText) graphemeByteRangeAtColumn(col int) (start, end int) {
	start = t.byteOffsetAtColumn(col)
	if start >= len(t.s) {
		return start, start
	}

	gr := uniseg.NewGraphemes(t.s[start:])
	if gr.Next() {
		s, e := gr.Positions()
		return start + s, start + e
	}
	return start, start
}

// textColumns returns the on-screen column width of s, as go-runewidth
// computes it rune by rune.
func textColumns(s string) int {
	total := 0
	for _, r := range s {
		total += runewidth.RuneWidth(r)
	}
	return total
}

// runeColumns returns the display width of a single codepoint, used for
// CHAR cells and cursor advancement.
func runeColumns(r rune) int {
	return runewidth.RuneWidth(r)
}
