package topology

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func validGroups() []Group {
	return []Group{
		{Name: "alpha", Multiplier: 1.0},
		{Name: "beta", Multiplier: 1.33},
	}
}

func validNodes() []NodeSpec {
	return []NodeSpec{
		{Name: "a1", Group: "alpha"},
		{Name: "a2", Group: "alpha"},
		{Name: "b1", Group: "beta"},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		groups []Group
		nodes  []NodeSpec
		edges  []Edge
		ok     bool
	}{
		{
			name:   "valid",
			groups: validGroups(),
			nodes:  validNodes(),
			edges:  []Edge{{A: 0, B: 2, Weight: 0.5}},
			ok:     true,
		},
		{
			name:   "no edges is valid",
			groups: validGroups(),
			nodes:  validNodes(),
			ok:     true,
		},
		{
			name:   "no groups",
			groups: nil,
			nodes:  validNodes(),
		},
		{
			name:   "empty group",
			groups: append(validGroups(), Group{Name: "gamma", Multiplier: 2.0}),
			nodes:  validNodes(),
		},
		{
			name:   "undeclared group",
			groups: validGroups(),
			nodes:  append(validNodes(), NodeSpec{Name: "x", Group: "nope"}),
		},
		{
			name:   "edge index out of range",
			groups: validGroups(),
			nodes:  validNodes(),
			edges:  []Edge{{A: 0, B: 3, Weight: 0.5}},
		},
		{
			name:   "negative edge index",
			groups: validGroups(),
			nodes:  validNodes(),
			edges:  []Edge{{A: -1, B: 1, Weight: 0.5}},
		},
		{
			name:   "self loop",
			groups: validGroups(),
			nodes:  validNodes(),
			edges:  []Edge{{A: 1, B: 1, Weight: 0.5}},
		},
		{
			name:   "negative weight",
			groups: validGroups(),
			nodes:  validNodes(),
			edges:  []Edge{{A: 0, B: 1, Weight: -0.1}},
		},
		{
			name:   "non-positive multiplier",
			groups: []Group{{Name: "alpha", Multiplier: 0}},
			nodes:  []NodeSpec{{Name: "a1", Group: "alpha"}},
		},
		{
			name:   "duplicate group",
			groups: []Group{{Name: "alpha", Multiplier: 1}, {Name: "alpha", Multiplier: 2}},
			nodes:  []NodeSpec{{Name: "a1", Group: "alpha"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.groups, tt.nodes, tt.edges)
			if tt.ok && err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("New() expected error, got nil")
				}
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("New() error = %v, want ErrConfiguration", err)
				}
			}
		})
	}
}

func TestFrequencies(t *testing.T) {
	topo, err := New(validGroups(), validNodes(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := topo.Frequencies(2.0)
	want := []float64{2.0, 2.0, 2.66}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("Frequencies()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMembersAndPairs(t *testing.T) {
	topo := Reference()

	if topo.N() != 9 {
		t.Fatalf("N() = %d, want 9", topo.N())
	}

	body := topo.Members("Body")
	if len(body) != 3 {
		t.Fatalf("Members(Body) = %v, want 3 indices", body)
	}
	for _, i := range body {
		if topo.Node(i).Group != "Body" {
			t.Errorf("node %d in Members(Body) has group %q", i, topo.Node(i).Group)
		}
	}

	pairs := topo.GroupPairs()
	want := [][2]string{{"Body", "Mind"}, {"Body", "Heart"}, {"Mind", "Heart"}}
	if len(pairs) != len(want) {
		t.Fatalf("GroupPairs() = %v, want %v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("GroupPairs()[%d] = %v, want %v", i, pairs[i], want[i])
		}
	}

	if got := topo.Members("nope"); got != nil {
		t.Errorf("Members(nope) = %v, want nil", got)
	}
}

func TestAccessorsCopy(t *testing.T) {
	topo := Reference()

	nodes := topo.Nodes()
	nodes[0].Name = "mutated"
	if topo.Node(0).Name == "mutated" {
		t.Error("Nodes() exposed internal slice")
	}

	edges := topo.Edges()
	edges[0].Weight = 99
	if topo.Edges()[0].Weight == 99 {
		t.Error("Edges() exposed internal slice")
	}

	members := topo.Members("Mind")
	members[0] = -1
	if topo.Members("Mind")[0] == -1 {
		t.Error("Members() exposed internal slice")
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
groups:
  - name: alpha
    multiplier: 1.0
  - name: beta
    multiplier: 3.33
nodes:
  - name: n0
    group: alpha
  - name: n1
    group: beta
edges:
  - a: n0
    b: n1
    weight: 0.7
`)
	topo, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if topo.N() != 2 {
		t.Fatalf("N() = %d, want 2", topo.N())
	}
	e := topo.Edges()
	if len(e) != 1 || e[0].A != 0 || e[0].B != 1 || e[0].Weight != 0.7 {
		t.Errorf("Edges() = %v, want [{0 1 0.7}]", e)
	}
}

func TestParseYAMLUnknownNode(t *testing.T) {
	data := []byte(`
groups:
  - name: alpha
    multiplier: 1.0
nodes:
  - name: n0
    group: alpha
edges:
  - a: n0
    b: ghost
    weight: 0.7
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Parse error = %v, want ErrConfiguration", err)
	}
}
