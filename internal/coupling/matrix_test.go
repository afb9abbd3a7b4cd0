package coupling

import (
	"math"
	"testing"

	"github.com/nvandessel/phasefield/internal/topology"
)

func TestBuildSymmetricZeroDiagonal(t *testing.T) {
	topo := topology.Reference()

	m, err := Build(topo, 0.3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if m.N() != topo.N() {
		t.Fatalf("N() = %d, want %d", m.N(), topo.N())
	}

	for i := 0; i < m.N(); i++ {
		if m.At(i, i) != 0 {
			t.Errorf("K[%d][%d] = %v, want 0", i, i, m.At(i, i))
		}
		for j := 0; j < m.N(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("K[%d][%d] = %v != K[%d][%d] = %v", i, j, m.At(i, j), j, i, m.At(j, i))
			}
		}
	}
}

func TestBuildScalesByStrength(t *testing.T) {
	topo := topology.Reference()

	for _, e := range topo.Edges() {
		m, err := Build(topo, 2.0)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		want := e.Weight * 2.0
		if math.Abs(m.At(e.A, e.B)-want) > 1e-12 {
			t.Errorf("K[%d][%d] = %v, want %v", e.A, e.B, m.At(e.A, e.B), want)
		}
	}
}

func TestBuildZeroStrength(t *testing.T) {
	topo := topology.Reference()

	m, err := Build(topo, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < m.N(); i++ {
		for j := 0; j < m.N(); j++ {
			if m.At(i, j) != 0 {
				t.Fatalf("K[%d][%d] = %v, want 0 at zero strength", i, j, m.At(i, j))
			}
		}
	}
}

func TestBuildNonEdgesZero(t *testing.T) {
	topo := topology.Reference()

	m, err := Build(topo, 1.0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	onEdge := make(map[[2]int]bool)
	for _, e := range topo.Edges() {
		onEdge[[2]int{e.A, e.B}] = true
		onEdge[[2]int{e.B, e.A}] = true
	}

	for i := 0; i < m.N(); i++ {
		for j := 0; j < m.N(); j++ {
			if i != j && !onEdge[[2]int{i, j}] && m.At(i, j) != 0 {
				t.Errorf("K[%d][%d] = %v for non-edge, want 0", i, j, m.At(i, j))
			}
		}
	}
}
