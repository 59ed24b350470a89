// sim/simulator.go
//
// Drives a replacement policy over a reference stream and records one step per reference.

package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/pagesim/pagesim/sim/trace"
)

// Result is the complete outcome of one run. Callers own it after Run returns
// and must treat it as read-only.
type Result struct {
	Policy     Policy             `json:"policy" yaml:"policy"`
	FrameCount int                `json:"frame_count" yaml:"frame_count"`
	Steps      []trace.StepRecord `json:"steps" yaml:"steps"`
	PageFaults int                `json:"page_faults" yaml:"page_faults"`
	Hits       int                `json:"hits" yaml:"hits"`
	FaultRate  float64            `json:"fault_rate" yaml:"fault_rate"` // percentage; 0 when Total is 0
	Total      int                `json:"total" yaml:"total"`
}

// Simulator holds the mutable state of a single run.
// A Simulator is used once; Run creates a fresh one per call.
type Simulator struct {
	frames *FrameSet
	policy ReplacementPolicy
	trace  *trace.SimulationTrace
	step   int
	faults int
	hits   int
}

// NewSimulator creates a Simulator for the given policy and frame count.
// Panics on an unrecognized policy or a negative frame count.
func NewSimulator(p Policy, frameCount int, expectedSteps int) *Simulator {
	return &Simulator{
		frames: NewFrameSet(frameCount),
		policy: NewReplacementPolicy(p),
		trace:  trace.NewSimulationTrace(frameCount, expectedSteps),
	}
}

// Access processes one page reference and records the resulting step.
func (sim *Simulator) Access(page int) trace.StepRecord {
	sim.step++
	record := trace.StepRecord{Step: sim.step, Reference: page}

	switch {
	case sim.frames.Contains(page):
		record.Status = trace.StatusHit
		sim.hits++
		sim.policy.Touch(page)
	case sim.frames.Capacity() == 0:
		// nothing can be retained
		record.Status = trace.StatusFault
		sim.faults++
	case !sim.frames.Full():
		record.Status = trace.StatusFault
		sim.faults++
		sim.frames.Place(page)
		sim.policy.Admit(page)
	default:
		record.Status = trace.StatusFault
		sim.faults++
		victim := sim.policy.Victim()
		sim.frames.Replace(victim, page)
		sim.policy.Admit(page)
		record.Evicted = &victim
	}

	record.Frames = sim.frames.Snapshot()
	sim.trace.RecordStep(record)

	if record.Evicted != nil {
		logrus.Debugf("[step %d] %s: ref=%d FAULT, evicted %d", record.Step, sim.policy.Name(), page, *record.Evicted)
	} else {
		logrus.Debugf("[step %d] %s: ref=%d %s", record.Step, sim.policy.Name(), page, record.Status)
	}
	logrus.Tracef("[step %d] frames=%v", record.Step, record.Frames)
	return record
}

// Result builds the run's result from the recorded trace.
func (sim *Simulator) Result() *Result {
	summary := trace.Summarize(sim.trace)
	return &Result{
		Policy:     sim.policy.Name(),
		FrameCount: sim.frames.Capacity(),
		Steps:      sim.trace.Steps(),
		PageFaults: summary.Faults,
		Hits:       summary.Hits,
		FaultRate:  summary.FaultRate,
		Total:      summary.Total,
	}
}

// Run simulates policy p with frameCount frames over refs.
// It is deterministic, does not modify refs, and panics on an unrecognized
// policy or a negative frame count.
func Run(p Policy, frameCount int, refs []int) *Result {
	sim := NewSimulator(p, frameCount, len(refs))
	for _, page := range refs {
		sim.Access(page)
	}
	res := sim.Result()
	logrus.Infof("%s with %d frames: %d references, %d faults, %d hits (%.1f%% fault rate)",
		res.Policy, res.FrameCount, res.Total, res.PageFaults, res.Hits, res.FaultRate)
	return res
}
