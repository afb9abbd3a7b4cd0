// Package coupling builds the symmetric coupling matrix that turns a
// topology's edge list into pairwise interaction strengths for the
// Kuramoto dynamics.
package coupling

import (
	"github.com/cockroachdb/errors"

	"github.com/nvandessel/phasefield/internal/topology"
)

// Matrix is an N x N symmetric coupling matrix with zero diagonal.
// K[i][j] is how strongly node j's phase pulls on node i's derivative.
type Matrix [][]float64

// Build constructs the coupling matrix from a topology's edges:
// K[i][j] = K[j][i] = weight(i,j) * strength. The matrix is a pure
// function of its inputs; callers that rescale strength must rebuild
// rather than patch, so no stale entries survive.
//
// Edge indices are re-validated here even though topology.New already
// checks them: Build is also reachable with hand-built edge lists in
// tests and fails with topology.ErrConfiguration on an out-of-range
// index.
func Build(topo *topology.Topology, strength float64) (Matrix, error) {
	n := topo.N()
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for _, e := range topo.Edges() {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return nil, errors.Wrapf(topology.ErrConfiguration, "edge (%d,%d) references node outside [0,%d)", e.A, e.B, n)
		}
		w := e.Weight * strength
		m[e.A][e.B] = w
		m[e.B][e.A] = w
	}

	return m, nil
}

// At returns K[i][j].
func (m Matrix) At(i, j int) float64 { return m[i][j] }

// N returns the matrix dimension.
func (m Matrix) N() int { return len(m) }
