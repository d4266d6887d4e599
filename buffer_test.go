package termrb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferAllSkip(t *testing.T) {
	rb := New(3, 10)
	lines, cols := rb.GetSize()
	assert.Equal(t, 3, lines)
	assert.Equal(t, 10, cols)

	for line := 0; line < lines; line++ {
		active, ok := rb.GetCellActive(line, 0)
		require.True(t, ok)
		assert.False(t, active)
	}
}

func TestTextAtMarksCellsActive(t *testing.T) {
	rb := New(5, 20)
	cols := rb.TextAt(1, 2, "hi")
	assert.Equal(t, 2, cols)

	active, ok := rb.GetCellActive(1, 2)
	require.True(t, ok)
	assert.True(t, active)

	text, ok := rb.GetCellText(1, 2)
	require.True(t, ok)
	assert.Equal(t, "h", text)

	text, ok = rb.GetCellText(1, 3)
	require.True(t, ok)
	assert.Equal(t, "i", text)
}

func TestCursorRelativeTextAdvancesColumn(t *testing.T) {
	rb := New(2, 20)
	rb.Goto(0, 0)
	n := rb.Text("abc")
	assert.Equal(t, 3, n)

	line, col, ok := rb.GetCursorPos()
	require.True(t, ok)
	assert.Equal(t, 0, line)
	assert.Equal(t, 3, col)
}

func TestTextWithoutGotoReturnsNegativeOne(t *testing.T) {
	rb := New(2, 20)
	assert.Equal(t, -1, rb.Text("abc"))
}

func TestRefUnrefDestroysAtZero(t *testing.T) {
	rb := New(1, 1)
	rb.Ref()
	rb.Unref()
	rb.Unref()
	assert.Panics(t, func() { rb.Unref() })
}

func TestClearErasesEverything(t *testing.T) {
	rb := New(2, 4)
	rb.TextAt(0, 0, "abcd")
	rb.Clear()

	text, ok := rb.GetCellText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "", text)
}
