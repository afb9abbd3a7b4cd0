package simulation

import (
	"math"
	"testing"

	"github.com/nvandessel/phasefield/internal/oscillator"
	"github.com/nvandessel/phasefield/internal/snapshot"
)

// AssertPhasesWrapped asserts that every current phase lies in [0, 2*pi).
func AssertPhasesWrapped(t *testing.T, osc *oscillator.Oscillator) {
	t.Helper()
	for i, p := range osc.Phases() {
		if p < 0 || p >= 2*math.Pi {
			t.Errorf("AssertPhasesWrapped: phase[%d] = %v, outside [0, 2pi)", i, p)
		}
	}
}

// AssertCoherenceBounded asserts that every recorded coherence value in
// every segment lies in [0, 1].
func AssertCoherenceBounded(t *testing.T, result Result) {
	t.Helper()
	for _, seg := range result.Segments {
		for _, rec := range seg.Records {
			if rec.Coherence < 0 || rec.Coherence > 1 {
				t.Errorf("AssertCoherenceBounded: segment %d t=%.3f coherence %v outside [0,1]", seg.Index, rec.Time, rec.Coherence)
			}
		}
	}
}

// AssertRecordCount asserts the exact number of records in a segment.
func AssertRecordCount(t *testing.T, seg SegmentResult, want int) {
	t.Helper()
	if len(seg.Records) != want {
		t.Errorf("AssertRecordCount: segment %d has %d records, want %d", seg.Index, len(seg.Records), want)
	}
}

// AssertFinalCoherenceAbove asserts the final global order parameter
// exceeds the threshold.
func AssertFinalCoherenceAbove(t *testing.T, result Result, threshold float64) {
	t.Helper()
	got := result.Final.Coherence["global"]
	if got <= threshold {
		t.Errorf("AssertFinalCoherenceAbove: global R = %.4f, want > %.4f", got, threshold)
	}
}

// AssertCoherenceRose asserts that a segment's last recorded coherence
// exceeds its first by at least minDelta.
func AssertCoherenceRose(t *testing.T, seg SegmentResult, minDelta float64) {
	t.Helper()
	if len(seg.Records) < 2 {
		t.Fatalf("AssertCoherenceRose: segment %d has %d records, need at least 2", seg.Index, len(seg.Records))
	}
	first := seg.Records[0].Coherence
	last := seg.Records[len(seg.Records)-1].Coherence
	if last-first < minDelta {
		t.Errorf("AssertCoherenceRose: segment %d coherence went %.4f -> %.4f, want rise >= %.4f", seg.Index, first, last, minDelta)
	}
}

// AssertDominantGroup asserts the snapshot's dominant group.
func AssertDominantGroup(t *testing.T, snap *snapshot.Snapshot, want string) {
	t.Helper()
	if snap.DominantGroup != want {
		t.Errorf("AssertDominantGroup: dominant = %q, want %q (activations %v)", snap.DominantGroup, want, snap.GroupActivations)
	}
}

// AssertTrajectoriesEqual asserts two record sequences match in time and
// phase within tol.
func AssertTrajectoriesEqual(t *testing.T, a, b []oscillator.HistoryRecord, tol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("AssertTrajectoriesEqual: %d vs %d records", len(a), len(b))
	}
	for i := range a {
		if a[i].Time != b[i].Time {
			t.Errorf("AssertTrajectoriesEqual: record %d time %v vs %v", i, a[i].Time, b[i].Time)
		}
		for j := range a[i].Phases {
			if math.Abs(a[i].Phases[j]-b[i].Phases[j]) > tol {
				t.Errorf("AssertTrajectoriesEqual: record %d phase[%d] %v vs %v", i, j, a[i].Phases[j], b[i].Phases[j])
			}
		}
	}
}

// MinCoherence returns the lowest recorded coherence in a segment.
func MinCoherence(seg SegmentResult) float64 {
	min := math.Inf(1)
	for _, rec := range seg.Records {
		if rec.Coherence < min {
			min = rec.Coherence
		}
	}
	return min
}

// MeanCoherence returns the mean recorded coherence in a segment.
func MeanCoherence(seg SegmentResult) float64 {
	if len(seg.Records) == 0 {
		return 0
	}
	sum := 0.0
	for _, rec := range seg.Records {
		sum += rec.Coherence
	}
	return sum / float64(len(seg.Records))
}
