package termrb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeSpanSplitsOverlappingRun writes a long run, then overwrites its
// middle with a shorter one, and checks both the untouched head and tail
// of the original run still read back correctly as independent spans.
func TestMakeSpanSplitsOverlappingRun(t *testing.T) {
	rb := New(1, 10)
	rb.TextAt(0, 0, "0123456789")

	rb.TextAt(0, 4, "XY")

	head, ok := rb.GetCellText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "0", head)

	mid, ok := rb.GetCellText(0, 4)
	require.True(t, ok)
	assert.Equal(t, "X", mid)

	tail, ok := rb.GetCellText(0, 6)
	require.True(t, ok)
	assert.Equal(t, "6", tail)

	// every column should still report some text, including the CONT
	// cells before/after the overwritten span
	for col := 0; col < 10; col++ {
		_, ok := rb.GetCellText(0, col)
		require.True(t, ok)
	}
}

func TestMakeSpanOverwriteEntireRun(t *testing.T) {
	rb := New(1, 5)
	rb.TextAt(0, 0, "abcde")
	rb.TextAt(0, 0, "12345")

	text, ok := rb.GetCellText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "1", text)

	text, ok = rb.GetCellText(0, 4)
	require.True(t, ok)
	assert.Equal(t, "5", text)
}
