package topology

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// fileTopology is the YAML shape for a topology definition. Edges reference
// nodes by name so files stay readable when nodes are reordered.
type fileTopology struct {
	Groups []struct {
		Name       string  `yaml:"name"`
		Multiplier float64 `yaml:"multiplier"`
	} `yaml:"groups"`
	Nodes []struct {
		Name  string `yaml:"name"`
		Group string `yaml:"group"`
	} `yaml:"nodes"`
	Edges []struct {
		A      string  `yaml:"a"`
		B      string  `yaml:"b"`
		Weight float64 `yaml:"weight"`
	} `yaml:"edges"`
}

// LoadFromFile reads a topology definition from a YAML file. Edge endpoints
// are node names; unknown names fail with ErrConfiguration.
func LoadFromFile(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading topology file")
	}
	return Parse(data)
}

// Parse decodes a YAML topology definition.
func Parse(data []byte) (*Topology, error) {
	var ft fileTopology
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, errors.Wrap(err, "parsing topology file")
	}

	groups := make([]Group, len(ft.Groups))
	for i, g := range ft.Groups {
		groups[i] = Group{Name: g.Name, Multiplier: g.Multiplier}
	}

	nodes := make([]NodeSpec, len(ft.Nodes))
	indexOf := make(map[string]int, len(ft.Nodes))
	for i, n := range ft.Nodes {
		nodes[i] = NodeSpec{Name: n.Name, Group: n.Group}
		if _, dup := indexOf[n.Name]; dup {
			return nil, errors.Wrapf(ErrConfiguration, "duplicate node name %q", n.Name)
		}
		indexOf[n.Name] = i
	}

	edges := make([]Edge, len(ft.Edges))
	for i, e := range ft.Edges {
		a, ok := indexOf[e.A]
		if !ok {
			return nil, errors.Wrapf(ErrConfiguration, "edge references unknown node %q", e.A)
		}
		b, ok := indexOf[e.B]
		if !ok {
			return nil, errors.Wrapf(ErrConfiguration, "edge references unknown node %q", e.B)
		}
		edges[i] = Edge{A: a, B: b, Weight: e.Weight}
	}

	return New(groups, nodes, edges)
}
