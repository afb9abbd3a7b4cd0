// Package topology defines the immutable oscillator network: named nodes
// partitioned into ordered groups, and weighted undirected edges describing
// which nodes couple. A Topology is validated once at construction and never
// mutated; everything downstream (coupling matrix, dynamics, coherence)
// derives from it.
//
// Group order is significant. Groups are kept as an ordered slice, never a
// map, so that per-group statistics, pairwise alignment keys, and the
// dominant-group tie-break are all deterministic.
package topology

import (
	"github.com/cockroachdb/errors"
)

// ErrConfiguration marks construction-time topology errors: an edge
// referencing a node index outside [0, N), a node naming an undeclared
// group, or a declared group with zero members. Check with errors.Is.
var ErrConfiguration = errors.New("topology: invalid configuration")

// Group is a named partition of nodes sharing a natural-frequency
// multiplier. Multiplier must be positive.
type Group struct {
	Name       string
	Multiplier float64
}

// Node is a single oscillator unit. Index is its position in the phase
// vector, Multiplier is inherited from its group at construction.
type Node struct {
	Index      int
	Name       string
	Group      string
	Multiplier float64
}

// NodeSpec declares a node for construction. Indices are assigned in
// declaration order.
type NodeSpec struct {
	Name  string
	Group string
}

// Edge is an unordered pair of node indices with a nonnegative coupling
// weight.
type Edge struct {
	A, B   int
	Weight float64
}

// Topology is the fixed oscillator network. All accessors return copies;
// the underlying data never changes after New.
type Topology struct {
	groups  []Group
	nodes   []Node
	edges   []Edge
	members map[string][]int
}

// New validates and constructs a Topology. It fails with ErrConfiguration
// when a node references an undeclared group, a declared group has no
// members, an edge index is out of range, a group multiplier is not
// positive, or an edge weight is negative.
func New(groups []Group, nodes []NodeSpec, edges []Edge) (*Topology, error) {
	if len(groups) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "no groups declared")
	}
	if len(nodes) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "no nodes declared")
	}

	multipliers := make(map[string]float64, len(groups))
	for _, g := range groups {
		if g.Name == "" {
			return nil, errors.Wrap(ErrConfiguration, "group with empty name")
		}
		if _, dup := multipliers[g.Name]; dup {
			return nil, errors.Wrapf(ErrConfiguration, "duplicate group %q", g.Name)
		}
		if g.Multiplier <= 0 {
			return nil, errors.Wrapf(ErrConfiguration, "group %q multiplier %v must be positive", g.Name, g.Multiplier)
		}
		multipliers[g.Name] = g.Multiplier
	}

	t := &Topology{
		groups:  append([]Group(nil), groups...),
		nodes:   make([]Node, len(nodes)),
		edges:   append([]Edge(nil), edges...),
		members: make(map[string][]int, len(groups)),
	}

	for i, spec := range nodes {
		m, ok := multipliers[spec.Group]
		if !ok {
			return nil, errors.Wrapf(ErrConfiguration, "node %q references undeclared group %q", spec.Name, spec.Group)
		}
		t.nodes[i] = Node{Index: i, Name: spec.Name, Group: spec.Group, Multiplier: m}
		t.members[spec.Group] = append(t.members[spec.Group], i)
	}

	for _, g := range groups {
		if len(t.members[g.Name]) == 0 {
			return nil, errors.Wrapf(ErrConfiguration, "group %q has no members", g.Name)
		}
	}

	n := len(nodes)
	for _, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return nil, errors.Wrapf(ErrConfiguration, "edge (%d,%d) references node outside [0,%d)", e.A, e.B, n)
		}
		if e.A == e.B {
			return nil, errors.Wrapf(ErrConfiguration, "edge (%d,%d) is a self-loop", e.A, e.B)
		}
		if e.Weight < 0 {
			return nil, errors.Wrapf(ErrConfiguration, "edge (%d,%d) weight %v must be nonnegative", e.A, e.B, e.Weight)
		}
	}

	return t, nil
}

// N returns the number of nodes.
func (t *Topology) N() int { return len(t.nodes) }

// Nodes returns the nodes in index order.
func (t *Topology) Nodes() []Node {
	return append([]Node(nil), t.nodes...)
}

// Node returns the node at index i.
func (t *Topology) Node(i int) Node { return t.nodes[i] }

// Groups returns the groups in declaration order.
func (t *Topology) Groups() []Group {
	return append([]Group(nil), t.groups...)
}

// Edges returns the edge list.
func (t *Topology) Edges() []Edge {
	return append([]Edge(nil), t.edges...)
}

// Members returns the node indices belonging to the named group, in
// declaration order. Unknown names return nil.
func (t *Topology) Members(group string) []int {
	return append([]int(nil), t.members[group]...)
}

// Frequencies returns the per-node natural-frequency vector for a given
// base frequency: omega_i = multiplier_i * base.
func (t *Topology) Frequencies(base float64) []float64 {
	omega := make([]float64, len(t.nodes))
	for i, n := range t.nodes {
		omega[i] = n.Multiplier * base
	}
	return omega
}

// GroupPairs returns every unordered group pair in declaration order:
// for groups [a, b, c] the pairs are (a,b), (a,c), (b,c). Pair keys built
// from this ordering are the contract for inter-group alignment reporting.
func (t *Topology) GroupPairs() [][2]string {
	var pairs [][2]string
	for i := 0; i < len(t.groups); i++ {
		for j := i + 1; j < len(t.groups); j++ {
			pairs = append(pairs, [2]string{t.groups[i].Name, t.groups[j].Name})
		}
	}
	return pairs
}
