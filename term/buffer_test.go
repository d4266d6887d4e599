package term

import (
	"testing"

	"github.com/cliofy/termrb/pen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferDriverPrintAdvancesCursor(t *testing.T) {
	bd := NewBufferDriver(2, 10)
	bd.Goto(0, 0)
	bd.Print([]byte("hi"))

	assert.Equal(t, "hi", bd.Line(0))
}

func TestBufferDriverEraseColumnsBlanks(t *testing.T) {
	bd := NewBufferDriver(1, 10)
	bd.Goto(0, 0)
	bd.Print([]byte("hello"))
	bd.Goto(0, 1)
	bd.EraseColumns(3, true)

	assert.Equal(t, "h", bd.Line(0)[:1])
	assert.Equal(t, "o", bd.Line(0)[4:5])
}

func TestBufferDriverTracksPenPerCell(t *testing.T) {
	bd := NewBufferDriver(1, 5)
	p := pen.New()
	p.Attrs = pen.Bold

	bd.Goto(0, 0)
	bd.SetPen(p)
	bd.Print([]byte("x"))

	got := bd.CellPen(0, 0)
	require.NotNil(t, got)
	assert.True(t, got.Attrs.Has(pen.Bold))
}

func TestBufferDriverStringTrimsTrailingSpaces(t *testing.T) {
	bd := NewBufferDriver(1, 10)
	bd.Goto(0, 0)
	bd.Print([]byte("hi"))

	assert.Equal(t, "hi", bd.String())
}
