// Package activation maps oscillator phases into bounded activation
// values and selects the dominant group. Activations feed downstream
// modulation only; they never influence the integration itself.
package activation

import (
	"math"

	"github.com/nvandessel/phasefield/internal/topology"
)

// FromPhase maps a phase to an activation in [0, 1]: (sin(theta)+1)/2.
func FromPhase(theta float64) float64 {
	return (math.Sin(theta) + 1) / 2
}

// Levels maps a phase vector to per-node activations.
func Levels(phases []float64) []float64 {
	out := make([]float64, len(phases))
	for i, theta := range phases {
		out[i] = FromPhase(theta)
	}
	return out
}

// GroupMeans returns the mean activation of each group's members.
func GroupMeans(topo *topology.Topology, phases []float64) map[string]float64 {
	means := make(map[string]float64, len(topo.Groups()))
	for _, g := range topo.Groups() {
		sum := 0.0
		members := topo.Members(g.Name)
		for _, i := range members {
			sum += FromPhase(phases[i])
		}
		means[g.Name] = sum / float64(len(members))
	}
	return means
}

// Dominant returns the group with the highest mean activation, along with
// all group means. Groups are compared in topology declaration order and
// only a strictly greater mean displaces the current leader, so an exact
// tie resolves to the earliest declared group. This is the fixed
// tie-break contract; callers must not rely on any other ordering.
func Dominant(topo *topology.Topology, phases []float64) (string, map[string]float64) {
	means := GroupMeans(topo, phases)

	var dominant string
	best := math.Inf(-1)
	for _, g := range topo.Groups() {
		if means[g.Name] > best {
			best = means[g.Name]
			dominant = g.Name
		}
	}
	return dominant, means
}
