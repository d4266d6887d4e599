package termrb

import (
	"testing"

	"github.com/cliofy/termrb/term"
	"github.com/stretchr/testify/assert"
)

func TestFlushToTermWritesTextAndErase(t *testing.T) {
	rb := New(2, 10)
	rb.TextAt(0, 0, "hi")
	rb.EraseAt(1, 0, 3)

	driver := term.NewBufferDriver(2, 10)
	rb.FlushToTerm(driver)

	assert.Equal(t, "hi", driver.Line(0))
	assert.Equal(t, "", driver.Line(1))
}

func TestFlushToTermResetsBufferAfter(t *testing.T) {
	rb := New(1, 5)
	rb.TextAt(0, 0, "ab")

	driver := term.NewBufferDriver(1, 5)
	rb.FlushToTerm(driver)

	active, ok := rb.GetCellActive(0, 0)
	assert := assert.New(t)
	assert.True(ok)
	assert.False(active)
}

func TestFlushToTermSkipsOverSkipCells(t *testing.T) {
	rb := New(1, 10)
	rb.SkipAt(0, 0, 5)
	rb.TextAt(0, 5, "hi")

	driver := term.NewBufferDriver(1, 10)
	rb.FlushToTerm(driver)

	assert.Equal(t, "hi", driver.Line(0)[5:7])
}

func TestFlushToTermCoalescesLineRuns(t *testing.T) {
	rb := New(1, 5)
	rb.HLineAt(0, 0, 4, 1, LineCapNone)

	driver := term.NewBufferDriver(1, 5)
	rb.FlushToTerm(driver)

	assert.Equal(t, 5, len([]rune(driver.Line(0))))
}
