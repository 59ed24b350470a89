package sim

// Comparison holds FIFO and LRU results for the same stream and frame count.
type Comparison struct {
	FrameCount int     `json:"frame_count" yaml:"frame_count"`
	FIFO       *Result `json:"fifo" yaml:"fifo"`
	LRU        *Result `json:"lru" yaml:"lru"`
}

// Compare runs every supported policy over refs.
func Compare(frameCount int, refs []int) *Comparison {
	return &Comparison{
		FrameCount: frameCount,
		FIFO:       Run(FIFO, frameCount, refs),
		LRU:        Run(LRU, frameCount, refs),
	}
}

// FaultDelta returns LRU faults minus FIFO faults. Positive means LRU faulted more.
func (c *Comparison) FaultDelta() int {
	return c.LRU.PageFaults - c.FIFO.PageFaults
}

// Result returns the run for p. Panics on an unrecognized policy.
func (c *Comparison) Result(p Policy) *Result {
	switch p {
	case FIFO:
		return c.FIFO
	case LRU:
		return c.LRU
	default:
		panic("unknown policy " + string(p))
	}
}
