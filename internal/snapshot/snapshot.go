// Package snapshot assembles the point-in-time state export of the
// oscillator. The Snapshot is the sole boundary interface of the core:
// downstream consumers (imbalance detection, CLI rendering, trace
// logging) read this structure and never reach into integrator state.
package snapshot

import (
	"time"

	"github.com/nvandessel/phasefield/internal/activation"
	"github.com/nvandessel/phasefield/internal/coherence"
	"github.com/nvandessel/phasefield/internal/topology"
)

// NodeState is one node's exported state.
type NodeState struct {
	Phase      float64 `json:"phase"`
	Activation float64 `json:"activation"`
	Group      string  `json:"group"`
	Frequency  float64 `json:"frequency"`
}

// Snapshot is an immutable export of oscillator state. The coherence map
// is flat: a "global" entry, one entry per group name, and one
// "<groupA>_<groupB>" entry per unordered group pair in declaration
// order. Build copies everything it touches; a Snapshot never aliases
// live simulation state.
type Snapshot struct {
	Timestamp        time.Time            `json:"timestamp"`
	Nodes            map[string]NodeState `json:"nodes"`
	Coherence        map[string]float64   `json:"coherence"`
	DominantGroup    string               `json:"dominant_group"`
	GroupActivations map[string]float64   `json:"group_activations"`
}

// Build assembles a Snapshot from a topology and its current phase
// vector. Frequency is the node's frequency multiplier, matching the
// construction-time group coefficient rather than the scaled omega.
func Build(ts time.Time, topo *topology.Topology, phases []float64) *Snapshot {
	levels := activation.Levels(phases)
	dominant, means := activation.Dominant(topo, phases)
	coh := coherence.Analyze(topo, phases)

	nodes := make(map[string]NodeState, topo.N())
	for _, n := range topo.Nodes() {
		nodes[n.Name] = NodeState{
			Phase:      phases[n.Index],
			Activation: levels[n.Index],
			Group:      n.Group,
			Frequency:  n.Multiplier,
		}
	}

	flat := make(map[string]float64, 1+len(coh.Groups)+len(coh.Pairs))
	flat["global"] = coh.Global
	for name, r := range coh.Groups {
		flat[name] = r
	}
	for key, score := range coh.Pairs {
		flat[key] = score
	}

	return &Snapshot{
		Timestamp:        ts,
		Nodes:            nodes,
		Coherence:        flat,
		DominantGroup:    dominant,
		GroupActivations: means,
	}
}
