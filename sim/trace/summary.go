package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Total         int
	Hits          int
	Faults        int
	Evictions     int
	FaultRate     float64     // percentage of references that faulted; 0 for an empty trace
	PeakOccupancy int         // max occupied frames observed in any snapshot
	EvictionCount map[int]int // page → number of times it was evicted
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		EvictionCount: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.Total = len(st.steps)
	for _, s := range st.steps {
		switch s.Status {
		case StatusHit:
			summary.Hits++
		case StatusFault:
			summary.Faults++
		}
		if s.Evicted != nil {
			summary.Evictions++
			summary.EvictionCount[*s.Evicted]++
		}
		if occ := s.Occupancy(); occ > summary.PeakOccupancy {
			summary.PeakOccupancy = occ
		}
	}

	if summary.Total > 0 {
		summary.FaultRate = float64(summary.Faults) / float64(summary.Total) * 100
	}
	return summary
}
