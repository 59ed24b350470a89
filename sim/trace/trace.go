package trace

// SimulationTrace collects step records during a single run.
// Records are append-only; callers must not modify returned records.
type SimulationTrace struct {
	FrameCount int
	steps      []StepRecord
}

// NewSimulationTrace creates a SimulationTrace sized for the expected number of steps.
func NewSimulationTrace(frameCount, expectedSteps int) *SimulationTrace {
	return &SimulationTrace{
		FrameCount: frameCount,
		steps:      make([]StepRecord, 0, expectedSteps),
	}
}

// RecordStep appends a step record.
func (st *SimulationTrace) RecordStep(record StepRecord) {
	st.steps = append(st.steps, record)
}

// Steps returns the recorded steps in order.
func (st *SimulationTrace) Steps() []StepRecord {
	return st.steps
}

// Len returns the number of recorded steps.
func (st *SimulationTrace) Len() int {
	return len(st.steps)
}
