// Package imbalance watches oscillator snapshots for degenerate
// dynamical conditions and drives the coupling feedback loop. It is a
// downstream consumer of the state snapshot: flags are signals for
// embedding layers, never errors raised by the core.
package imbalance

import (
	"github.com/nvandessel/phasefield/internal/snapshot"
)

// Flags marks which imbalance conditions hold for a snapshot.
type Flags struct {
	// GroupDominance: some node's activation exceeds the dominance
	// ceiling.
	GroupDominance bool `json:"group_dominance"`

	// CoherenceDrop: global coherence fell below the floor.
	CoherenceDrop bool `json:"coherence_drop"`

	// UnityCollapse: every node's activation sits below the collapse
	// floor.
	UnityCollapse bool `json:"unity_collapse"`
}

// Any reports whether any flag is raised.
func (f Flags) Any() bool {
	return f.GroupDominance || f.CoherenceDrop || f.UnityCollapse
}

// Thresholds holds the detection cutoffs.
type Thresholds struct {
	DominanceCeiling float64
	CoherenceFloor   float64
	CollapseFloor    float64
}

// DefaultThresholds returns the standard cutoffs: dominance above 0.8,
// coherence below 0.3, collapse below 0.2.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DominanceCeiling: 0.8,
		CoherenceFloor:   0.3,
		CollapseFloor:    0.2,
	}
}

// Detect evaluates all imbalance conditions against a snapshot.
func Detect(snap *snapshot.Snapshot, th Thresholds) Flags {
	var f Flags

	collapsed := len(snap.Nodes) > 0
	for _, n := range snap.Nodes {
		if n.Activation > th.DominanceCeiling {
			f.GroupDominance = true
		}
		if n.Activation >= th.CollapseFloor {
			collapsed = false
		}
	}
	f.UnityCollapse = collapsed

	if snap.Coherence["global"] < th.CoherenceFloor {
		f.CoherenceDrop = true
	}

	return f
}

// Corrections maps raised flags to corrective strategy names, in a fixed
// order so downstream consumers see a stable sequence.
func Corrections(f Flags) []string {
	var out []string
	if f.GroupDominance {
		out = append(out, "boost_weak_groups", "increase_cross_group_coupling")
	}
	if f.CoherenceDrop {
		out = append(out, "synchronization_pulse", "reduce_external_noise")
	}
	if f.UnityCollapse {
		out = append(out, "global_amplitude_boost", "external_stimulus_injection")
	}
	return out
}
