package graph

import (
	"strconv"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// preset is a demonstration graph with a stable lookup key.
type preset struct {
	key   string
	graph Graph
}

var presets = []preset{
	{"euler-circuit-undirected", Graph{
		Name:  "Eulerian circuit exists (undirected)",
		Nodes: ids(5),
		Edges: []Edge{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}},
	}},
	{"euler-path-undirected", Graph{
		Name:  "Eulerian path exists (undirected)",
		Nodes: ids(5),
		Edges: []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {1, 3}},
	}},
	{"hamilton-circuit-undirected", Graph{
		Name:  "Hamiltonian circuit exists (undirected)",
		Nodes: ids(5),
		Edges: []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
	}},
	{"hamilton-path-undirected", Graph{
		Name:  "Hamiltonian path exists (undirected)",
		Nodes: ids(4),
		Edges: []Edge{{0, 1}, {1, 2}, {2, 3}},
	}},
	{"euler-circuit-directed", Graph{
		Name:     "Eulerian circuit exists (directed)",
		Directed: true,
		Nodes:    ids(4),
		Edges:    []Edge{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 0}},
	}},
	{"euler-path-directed", Graph{
		Name:     "Eulerian path exists (directed)",
		Directed: true,
		Nodes:    ids(4),
		Edges:    []Edge{{0, 1}, {1, 2}, {2, 3}},
	}},
	{"hamilton-circuit-directed", Graph{
		Name:     "Hamiltonian circuit exists (directed)",
		Directed: true,
		Nodes:    ids(4),
		Edges:    []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}},
	{"hamilton-path-directed", Graph{
		Name:     "Hamiltonian path exists (directed)",
		Directed: true,
		Nodes:    ids(3),
		Edges:    []Edge{{0, 1}, {1, 2}},
	}},
}

func ids(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i].ID = i
	}
	return nodes
}

// PresetKeys returns the keys of the predefined graphs in display order.
func PresetKeys() []string {
	keys := make([]string, len(presets))
	for i, p := range presets {
		keys[i] = p.key
	}
	return keys
}

// Presets returns copies of the predefined graphs in display order.
func Presets() []Graph {
	out := make([]Graph, len(presets))
	for i, p := range presets {
		out[i] = p.graph.Clone()
	}
	return out
}

// Preset returns a copy of the predefined graph with the given key. A
// zero-based index into [PresetKeys] is accepted too.
func Preset(key string) (Graph, error) {
	for _, p := range presets {
		if p.key == key {
			return p.graph.Clone(), nil
		}
	}
	if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(presets) {
		return presets[i].graph.Clone(), nil
	}
	return Graph{}, errors.New(errors.ErrCodeInvalidInput, "unknown preset %q", key)
}
