// Package sim provides the page-replacement simulation engine.
//
// # Reading Guide
//
// Start with these files:
//   - simulator.go: Run, the per-reference decision procedure, and Result
//   - policy.go: the FIFO and LRU replacement policies
//   - frames.go: the fixed-capacity frame set
//
// # Architecture
//
// The engine separates policy decisions from trace recording:
//   - ReplacementPolicy chooses victims and tracks arrival or recency order
//   - FrameSet holds the simulated physical memory, slot by slot
//   - sim/trace/: pure-data step records and summary statistics
//
// Everything else adapts input and output around Run: reference-string
// parsing (reference.go), seeded random streams (rng.go), YAML scenarios
// (scenario.go), FIFO/LRU comparison (compare.go), and text/JSON/YAML
// rendering (report.go).
//
// A run is a pure, synchronous computation. Separate runs share no state and
// may execute concurrently.
package sim
