package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_TextbookStream(t *testing.T) {
	// GIVEN the textbook stream with 3 frames
	c := Compare(3, textbookRefs)

	// THEN each side matches an individual run
	assert.Equal(t, Run(FIFO, 3, textbookRefs), c.FIFO)
	assert.Equal(t, Run(LRU, 3, textbookRefs), c.LRU)
	assert.Equal(t, -1, c.FaultDelta(), "LRU faults once less than FIFO here")
	assert.Same(t, c.LRU, c.Result(LRU))
	assert.Same(t, c.FIFO, c.Result(FIFO))
}

func TestCompare_BeladyAnomaly(t *testing.T) {
	// FIFO faults more with 4 frames than with 3 on this stream; LRU never does.
	refs := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}
	three := Compare(3, refs)
	four := Compare(4, refs)

	assert.Equal(t, 9, three.FIFO.PageFaults)
	assert.Equal(t, 10, four.FIFO.PageFaults)
	assert.LessOrEqual(t, four.LRU.PageFaults, three.LRU.PageFaults)
}

func TestComparison_Result_UnknownPolicy_Panics(t *testing.T) {
	c := Compare(1, nil)
	assert.Panics(t, func() { c.Result("OPT") })
}
