package simulation

import (
	"github.com/nvandessel/phasefield/internal/oscillator"
	"github.com/nvandessel/phasefield/internal/snapshot"
	"github.com/nvandessel/phasefield/internal/topology"
)

// Scenario defines a complete simulation experiment.
type Scenario struct {
	Name string

	// Topology selects the oscillator network. Nil uses the reference
	// nine-center layout.
	Topology *topology.Topology

	// BaseFrequency defaults to 1.0 when zero.
	BaseFrequency float64

	// CouplingStrength is used as given; zero means fully decoupled.
	CouplingStrength float64

	// Seed makes phase seeding reproducible. Always applied, so every
	// scenario run is deterministic.
	Seed uint64

	// InitialPhases, when non-nil, bypasses seeded randomness for
	// scenarios that need exact phase control.
	InitialPhases []float64

	// Segments are executed in order against the same oscillator.
	Segments []Segment
}

// Segment is one Simulate run within a scenario.
type Segment struct {
	// Duration is the simulated time for this segment. Required.
	Duration float64

	// Dt defaults to 0.01 when zero.
	Dt float64

	// RecordInterval defaults to 10 when zero.
	RecordInterval int

	// Before, when non-nil, runs against the oscillator before the
	// segment starts. Use this to rescale coupling or inspect state
	// mid-experiment.
	Before func(o *oscillator.Oscillator) error
}

// SegmentResult captures one segment's sampled records and the snapshot
// taken at its end.
type SegmentResult struct {
	Index    int
	Records  []oscillator.HistoryRecord
	Snapshot *snapshot.Snapshot
}

// Result captures all segments and the final oscillator state.
type Result struct {
	Segments   []SegmentResult
	Oscillator *oscillator.Oscillator
	Final      *snapshot.Snapshot
}
