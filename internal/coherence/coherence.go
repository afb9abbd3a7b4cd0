// Package coherence computes Kuramoto order-parameter statistics: the
// global synchronization level of a phase vector, per-group levels, and
// pairwise inter-group phase alignment.
package coherence

import (
	"math"
	"math/cmplx"

	"github.com/nvandessel/phasefield/internal/topology"
)

// MeanPhasor returns the complex mean of the unit phasors e^{i*theta}
// over the given phases. An empty input returns 0.
func MeanPhasor(phases []float64) complex128 {
	if len(phases) == 0 {
		return 0
	}
	var sum complex128
	for _, theta := range phases {
		sum += cmplx.Exp(complex(0, theta))
	}
	return sum / complex(float64(len(phases)), 0)
}

// OrderParameter returns R = |mean(e^{i*theta})|, in [0, 1]. R is 1 only
// when all phases coincide modulo 2*pi and approaches 0 for a uniform
// spread. An empty input returns 0.
func OrderParameter(phases []float64) float64 {
	return cmplx.Abs(MeanPhasor(phases))
}

// Alignment scores how closely two mean phasors point in the same
// direction: 1 - |arg(a) - arg(b)| / pi, clipped to [0, 1].
func Alignment(a, b complex128) float64 {
	diff := math.Abs(cmplx.Phase(a) - cmplx.Phase(b))
	score := 1 - diff/math.Pi
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Snapshot holds coherence metrics at global, per-group, and group-pair
// resolution. Pair keys are "<groupA>_<groupB>" with the groups in
// topology declaration order.
type Snapshot struct {
	Global float64
	Groups map[string]float64
	Pairs  map[string]float64
}

// PairKey builds the canonical map key for a group pair.
func PairKey(a, b string) string {
	return a + "_" + b
}

// Analyze computes the full coherence snapshot for a phase vector over a
// topology. phases must have length topo.N().
func Analyze(topo *topology.Topology, phases []float64) Snapshot {
	snap := Snapshot{
		Global: OrderParameter(phases),
		Groups: make(map[string]float64, len(topo.Groups())),
		Pairs:  make(map[string]float64),
	}

	phasors := make(map[string]complex128, len(topo.Groups()))
	for _, g := range topo.Groups() {
		members := topo.Members(g.Name)
		sub := make([]float64, len(members))
		for i, idx := range members {
			sub[i] = phases[idx]
		}
		z := MeanPhasor(sub)
		phasors[g.Name] = z
		snap.Groups[g.Name] = cmplx.Abs(z)
	}

	for _, pair := range topo.GroupPairs() {
		snap.Pairs[PairKey(pair[0], pair[1])] = Alignment(phasors[pair[0]], phasors[pair[1]])
	}

	return snap
}
