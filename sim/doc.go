// Package sim provides the page replacement simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - simulate.go: Simulate, the shared step routine and the frame pool bookkeeping
//   - victim.go: the three victim selectors (oldest arrival, least recent use, farthest future use)
//   - snapshot.go: StepSnapshot and FrameState, the immutable per-reference records
//   - result.go: SimulationResult with hit/fault tallies and ratios
//
// # Architecture
//
// Simulate is a pure function: it owns every piece of state it touches, performs no I/O
// and never logs. Concurrent calls are independent. Collaborators live in sub-packages:
//   - sim/refstring/: parse free-form text into a reference sequence and a frame capacity
//   - sim/playback/: step through a precomputed result with play/pause/reset controls
//   - sim/trace/: eviction decision records with per-candidate scores
//   - sim/workload/: seeded reference-string generators
//
// # Key Interfaces
//
//   - VictimSelector: policy bookkeeping plus victim choice when the pool is full.
//     Built once per run by NewVictimSelector; the step routine never branches on policy.
package sim
