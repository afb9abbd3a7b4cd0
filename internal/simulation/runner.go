package simulation

import (
	"context"
	"fmt"
	"testing"

	"github.com/nvandessel/phasefield/internal/oscillator"
	"github.com/nvandessel/phasefield/internal/topology"
)

// Runner orchestrates multi-segment simulation experiments against a
// real oscillator.
type Runner struct {
	t *testing.T
}

// NewRunner creates a simulation runner.
func NewRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{t: t}
}

// Run executes the scenario and returns the collected results.
func (r *Runner) Run(scenario Scenario) Result {
	r.t.Helper()
	ctx := context.Background()

	topo := scenario.Topology
	if topo == nil {
		topo = topology.Reference()
	}

	baseFreq := scenario.BaseFrequency
	if baseFreq == 0 {
		baseFreq = 1.0
	}

	seed := scenario.Seed
	osc, err := oscillator.New(topo, oscillator.Config{
		BaseFrequency:    baseFreq,
		CouplingStrength: scenario.CouplingStrength,
		Seed:             &seed,
		InitialPhases:    scenario.InitialPhases,
	})
	if err != nil {
		r.t.Fatalf("scenario %s: New: %v", scenario.Name, err)
	}

	segments := make([]SegmentResult, len(scenario.Segments))
	for i, seg := range scenario.Segments {
		if seg.Before != nil {
			if err := seg.Before(osc); err != nil {
				r.t.Fatalf("scenario %s: segment %d Before: %v", scenario.Name, i, err)
			}
		}

		dt := seg.Dt
		if dt == 0 {
			dt = 0.01
		}
		interval := seg.RecordInterval
		if interval == 0 {
			interval = 10
		}

		recordedBefore := osc.HistoryLen()
		if err := osc.Simulate(ctx, seg.Duration, dt, interval); err != nil {
			r.t.Fatalf("scenario %s: segment %d Simulate: %v", scenario.Name, i, err)
		}

		segments[i] = SegmentResult{
			Index:    i,
			Records:  osc.History()[recordedBefore:],
			Snapshot: osc.Snapshot(),
		}
	}

	return Result{
		Segments:   segments,
		Oscillator: osc,
		Final:      osc.Snapshot(),
	}
}

// FormatSegmentDebug returns a debug string for a segment result.
func FormatSegmentDebug(sr SegmentResult) string {
	s := fmt.Sprintf("Segment %d: records=%d\n", sr.Index, len(sr.Records))
	for _, rec := range sr.Records {
		s += fmt.Sprintf("  t=%.3f coherence=%.4f\n", rec.Time, rec.Coherence)
	}
	if sr.Snapshot != nil {
		s += fmt.Sprintf("  dominant=%s global=%.4f\n", sr.Snapshot.DominantGroup, sr.Snapshot.Coherence["global"])
	}
	return s
}
