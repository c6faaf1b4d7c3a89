package graph

import (
	"slices"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// =============================================================================
// Graph Model
// =============================================================================

// Graph is a small graph with integer node IDs.
type Graph struct {
	Name     string `json:"name,omitempty" toml:"name,omitempty"`
	Directed bool   `json:"directed" toml:"directed"`
	Nodes    []Node `json:"nodes" toml:"nodes"`
	Edges    []Edge `json:"edges" toml:"edges"`
}

// Node is a graph node.
type Node struct {
	ID int `json:"id" toml:"id"`
}

// Edge connects two nodes. In an undirected graph the endpoints are
// interchangeable.
type Edge struct {
	From int `json:"from" toml:"from"`
	To   int `json:"to" toml:"to"`
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// Degree is the number of edges entering and leaving a node. In an
// undirected graph both fields hold the node's degree.
type Degree struct {
	In, Out int
}

// Balance returns Out - In.
func (d Degree) Balance() int { return d.Out - d.In }

// New returns a graph with nodes 0..n-1 and the given edges.
func New(n int, directed bool, edges ...Edge) Graph {
	g := Graph{Directed: directed, Nodes: make([]Node, n), Edges: slices.Clone(edges)}
	for i := range g.Nodes {
		g.Nodes[i].ID = i
	}
	return g
}

// Clone returns a deep copy of g.
func (g Graph) Clone() Graph {
	g.Nodes = slices.Clone(g.Nodes)
	g.Edges = slices.Clone(g.Edges)
	return g
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks that node IDs are unique and that every edge joins two
// distinct known nodes.
func (g Graph) Validate() error {
	seen := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidGraph, "duplicate node %d", n.ID)
		}
		seen[n.ID] = true
	}
	for _, e := range g.Edges {
		if !seen[e.From] || !seen[e.To] {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %d->%d references an unknown node", e.From, e.To)
		}
		if e.From == e.To {
			return errors.New(errors.ErrCodeInvalidGraph, "self-loop on node %d", e.From)
		}
	}
	return nil
}

// =============================================================================
// Queries
// =============================================================================

// IDs returns the node IDs in ascending order.
func (g Graph) IDs() []int {
	ids := make([]int, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	slices.Sort(ids)
	return ids
}

// HasNode reports whether id is a node of g.
func (g Graph) HasNode(id int) bool {
	return slices.ContainsFunc(g.Nodes, func(n Node) bool { return n.ID == id })
}

// Neighbors returns the nodes reachable from id over one edge, in edge
// declaration order. Directed graphs follow outgoing edges only. Parallel
// edges yield repeated neighbours.
func (g Graph) Neighbors(id int) []int {
	var out []int
	for _, e := range g.Edges {
		switch {
		case e.From == id:
			out = append(out, e.To)
		case !g.Directed && e.To == id:
			out = append(out, e.From)
		}
	}
	return out
}

// SameEdge reports whether a and b denote the same edge of g.
func (g Graph) SameEdge(a, b Edge) bool {
	if a == b {
		return true
	}
	return !g.Directed && a == b.Reverse()
}

// HasEdge reports whether g has an edge from -> to, in either direction when
// g is undirected.
func (g Graph) HasEdge(from, to int) bool {
	want := Edge{From: from, To: to}
	return slices.ContainsFunc(g.Edges, func(e Edge) bool { return g.SameEdge(e, want) })
}

// Degrees returns the degree of every node.
func (g Graph) Degrees() map[int]Degree {
	deg := make(map[int]Degree, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.ID] = Degree{}
	}
	for _, e := range g.Edges {
		from, to := deg[e.From], deg[e.To]
		if g.Directed {
			from.Out++
			to.In++
		} else {
			from.In++
			from.Out++
			to.In++
			to.Out++
		}
		deg[e.From], deg[e.To] = from, to
	}
	return deg
}

// EdgesConnected reports whether all nodes that touch an edge lie in one
// weakly connected component. A graph without edges is connected.
func (g Graph) EdgesConnected() bool {
	if len(g.Edges) == 0 {
		return true
	}
	adj := make(map[int][]int)
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	seen := map[int]bool{g.Edges[0].From: true}
	stack := []int{g.Edges[0].From}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, m := range adj[n] {
			if !seen[m] {
				seen[m] = true
				stack = append(stack, m)
			}
		}
	}
	return len(seen) == len(adj)
}
