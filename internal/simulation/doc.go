// Package simulation provides a multi-segment test harness for
// validating emergent dynamics of the oscillator core.
//
// The harness exercises the real Oscillator, coupling matrix, and
// coherence analyzer — no mocks. Scenarios are Go builders that
// construct a seeded oscillator and run configurable simulation
// segments, capturing history records and snapshots for property-based
// assertions. Segments may mutate the oscillator between runs (for
// example rescaling coupling strength) to probe the feedback path.
//
// Usage:
//
//	func TestCouplingSynchronizes(t *testing.T) {
//	    r := simulation.NewRunner(t)
//	    result := r.Run(simulation.Scenario{
//	        Name:             "coupling-sync",
//	        CouplingStrength: 1.0,
//	        Seed:             42,
//	        Segments:         []simulation.Segment{{Duration: 50}},
//	    })
//	    simulation.AssertFinalCoherenceAbove(t, result, 0.9)
//	}
package simulation
