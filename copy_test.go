package termrb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyRectDuplicatesText(t *testing.T) {
	rb := New(3, 10)
	rb.TextAt(0, 0, "hello")

	rb.CopyRect(NewRect(2, 0, 1, 5), NewRect(0, 0, 1, 5))

	text, ok := rb.GetCellText(2, 0)
	require.True(t, ok)
	assert.Equal(t, "h", text)
	text, ok = rb.GetCellText(2, 4)
	require.True(t, ok)
	assert.Equal(t, "o", text)
}

func TestCopyRectOverlappingDownwardIteratesBottomUp(t *testing.T) {
	rb := New(5, 5)
	for line := 0; line < 5; line++ {
		rb.CharAt(line, 0, rune('0'+line))
	}

	// shift every line down by one: without the upward iteration order,
	// this would clobber source rows before they're read
	rb.CopyRect(NewRect(1, 0, 4, 1), NewRect(0, 0, 4, 1))

	for line := 1; line < 5; line++ {
		text, ok := rb.GetCellText(line, 0)
		require.True(t, ok)
		assert.Equal(t, string(rune('0'+line-1)), text)
	}
}

func TestCopyRectOverlappingRightwardIteratesLeftwards(t *testing.T) {
	rb := New(1, 10)
	for col := 0; col < 10; col++ {
		rb.CharAt(0, col, rune('A'+col))
	}

	// shift columns 0..4 rightward onto 3..7: source and destination
	// overlap at columns 3,4, exercising copyRect's leftwards iteration
	// order (without it, writing column 3 before reading it would
	// corrupt the still-unread source data at column 3/4)
	rb.CopyRect(NewRect(0, 3, 1, 5), NewRect(0, 0, 1, 5))

	want := "ABCABCDEIJ"
	for col := 0; col < 10; col++ {
		text, ok := rb.GetCellText(0, col)
		require.True(t, ok)
		assert.Equal(t, string(want[col]), text, "column %d", col)
	}
}

func TestMoveRectOverlappingRightward(t *testing.T) {
	rb := New(1, 10)
	for col := 0; col < 10; col++ {
		rb.CharAt(0, col, rune('A'+col))
	}

	rb.MoveRect(NewRect(0, 3, 1, 5), NewRect(0, 0, 1, 5))

	for col := 3; col <= 7; col++ {
		text, ok := rb.GetCellText(0, col)
		require.True(t, ok)
		assert.Equal(t, string(rune('A'+col-3)), text, "column %d", col)
	}

	// columns 0..2 are vacated by the move (not re-covered by the
	// destination) and should be marked SKIP
	for col := 0; col <= 2; col++ {
		active, ok := rb.GetCellActive(0, col)
		require.True(t, ok)
		assert.False(t, active, "column %d", col)
	}
}

func TestBlitLeavesSkipCellsAlone(t *testing.T) {
	dst := New(1, 5)
	dst.TextAt(0, 0, "abcde")

	src := New(1, 5)
	src.TextAt(0, 2, "X") // columns 0,1,3,4 remain SKIP in src

	dst.Blit(src)

	text, ok := dst.GetCellText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "a", text) // untouched by the SKIP cell at src(0,0)

	text, ok = dst.GetCellText(0, 2)
	require.True(t, ok)
	assert.Equal(t, "X", text)
}

func TestMoveRectSkipsVacatedArea(t *testing.T) {
	rb := New(1, 10)
	rb.TextAt(0, 0, "abcde")

	rb.MoveRect(NewRect(0, 5, 1, 5), NewRect(0, 0, 1, 5))

	text, ok := rb.GetCellText(0, 5)
	require.True(t, ok)
	assert.Equal(t, "a", text)

	active, ok := rb.GetCellActive(0, 0)
	require.True(t, ok)
	assert.False(t, active)
}
