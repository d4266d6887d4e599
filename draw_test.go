package termrb

import (
	"testing"

	"github.com/cliofy/termrb/linechar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseMarksActiveButBlank(t *testing.T) {
	rb := New(1, 10)
	rb.EraseAt(0, 0, 5)

	active, ok := rb.GetCellActive(0, 0)
	require.True(t, ok)
	assert.True(t, active)

	text, ok := rb.GetCellText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "", text)
}

func TestSkipAtLeavesCellInactive(t *testing.T) {
	rb := New(1, 10)
	rb.TextAt(0, 0, "hello")
	rb.SkipAt(0, 0, 5)

	active, ok := rb.GetCellActive(0, 0)
	require.True(t, ok)
	assert.False(t, active)
}

func TestClipDiscardsOutOfBoundsDraw(t *testing.T) {
	rb := New(5, 5)
	rb.Save()
	rb.Clip(NewRect(0, 0, 2, 2))
	rb.TextAt(3, 3, "x")
	rb.Restore() // lift the clip so (3,3) can be queried

	active, ok := rb.GetCellActive(3, 3)
	require.True(t, ok)
	assert.False(t, active)
}

func TestClipTruncatesPartiallyOutOfBoundsSpan(t *testing.T) {
	rb := New(1, 5)
	rb.Save()
	rb.Clip(NewRect(0, 0, 1, 3))
	cols := rb.TextAt(0, 0, "abcde")
	rb.Restore() // lift the clip so column 3 can be queried

	assert.Equal(t, 5, cols) // reports full width regardless of clip

	active, ok := rb.GetCellActive(0, 2)
	require.True(t, ok)
	assert.True(t, active)

	// column 3 is outside the clip rectangle, so xlateAndClip cut the span
	// short before it and the cell is left untouched (still inactive)
	active, ok = rb.GetCellActive(0, 3)
	require.True(t, ok)
	assert.False(t, active)
}

func TestMaskHidesCellsUntilRestore(t *testing.T) {
	rb := New(1, 10)
	rb.TextAt(0, 0, "1234567890")

	rb.Save()
	rb.Mask(NewRect(0, 2, 1, 3))
	rb.TextAt(0, 2, "XXX") // masked: should not overwrite

	active, ok := rb.GetCellActive(0, 2)
	require.True(t, ok)
	assert.True(t, active) // still the original '3' from before masking
	text, _ := rb.GetCellText(0, 2)
	assert.Equal(t, "3", text)

	rb.Restore()

	rb.TextAt(0, 2, "YYY")
	text, _ = rb.GetCellText(0, 2)
	assert.Equal(t, "Y", text)
}

func TestTranslateShiftsCoordinates(t *testing.T) {
	rb := New(5, 5)
	rb.Translate(1, 2)
	rb.TextAt(0, 0, "x")

	active, ok := rb.GetCellActive(1, 2)
	require.True(t, ok)
	assert.True(t, active)
}

func TestHLineAtProducesBoxGlyphs(t *testing.T) {
	rb := New(1, 5)
	rb.HLineAt(0, 0, 4, linechar.Single, LineCapNone)

	text, ok := rb.GetCellText(0, 2)
	require.True(t, ok)
	assert.Equal(t, string(linechar.ToRune(linechar.Mask(linechar.None, linechar.Single, linechar.None, linechar.Single))), text)
}

func TestVLineAtWithCapsJoinsCorner(t *testing.T) {
	rb := New(5, 5)
	rb.HLineAt(0, 0, 2, linechar.Single, LineCapEnd)
	rb.VLineAt(0, 2, 2, linechar.Single, LineCapStart)

	mask := rb.GetCellLineMask(0, 2)
	n, e, s, w := linechar.Directions(mask)
	assert.Equal(t, linechar.Single, n)
	assert.Equal(t, linechar.Single, e)
	assert.Equal(t, linechar.Single, s)
	assert.Equal(t, linechar.Single, w)
}

func TestCharAdvancesByDisplayWidth(t *testing.T) {
	rb := New(1, 10)
	rb.Goto(0, 0)
	rb.Char('世') // wide character, width 2

	_, col, _ := rb.GetCursorPos()
	assert.Equal(t, 2, col)
}
