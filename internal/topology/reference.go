package topology

// Reference returns the built-in nine-center layout: three groups of three
// nodes with the 1.00 : 1.33 : 3.33 frequency ratio, coupled by seventeen
// weighted channels. Strong intra-cluster links sit around 0.7-0.9 with a
// handful of weaker 0.4-0.5 cross-group connections.
//
// The layout is hardcoded and validated, so construction cannot fail.
func Reference() *Topology {
	groups := []Group{
		{Name: "Body", Multiplier: 1.00},
		{Name: "Mind", Multiplier: 1.33},
		{Name: "Heart", Multiplier: 3.33},
	}

	nodes := []NodeSpec{
		{Name: "Head", Group: "Mind"},
		{Name: "Ajna", Group: "Mind"},
		{Name: "Throat", Group: "Mind"},
		{Name: "G", Group: "Heart"},
		{Name: "Heart/Ego", Group: "Heart"},
		{Name: "Solar Plexus", Group: "Heart"},
		{Name: "Sacral", Group: "Body"},
		{Name: "Spleen", Group: "Body"},
		{Name: "Root", Group: "Body"},
	}

	edges := []Edge{
		{A: 0, B: 1, Weight: 0.8},
		{A: 1, B: 2, Weight: 0.8},
		{A: 2, B: 3, Weight: 0.7},
		{A: 3, B: 4, Weight: 0.9},
		{A: 3, B: 5, Weight: 0.9},
		{A: 3, B: 6, Weight: 0.9},
		{A: 4, B: 6, Weight: 0.6},
		{A: 5, B: 6, Weight: 0.8},
		{A: 6, B: 7, Weight: 0.7},
		{A: 6, B: 8, Weight: 0.7},
		{A: 7, B: 3, Weight: 0.6},
		{A: 8, B: 5, Weight: 0.6},
		{A: 8, B: 7, Weight: 0.6},

		{A: 2, B: 4, Weight: 0.5},
		{A: 2, B: 5, Weight: 0.5},
		{A: 2, B: 6, Weight: 0.5},
		{A: 1, B: 7, Weight: 0.4},
	}

	t, err := New(groups, nodes, edges)
	if err != nil {
		panic("topology: reference layout invalid: " + err.Error())
	}
	return t
}
