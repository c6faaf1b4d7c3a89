package trail

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/algoviz/pkg/graph"
)

// State is the presentation state of a run.
type State struct {
	CurrentNodes []int
	CurrentEdges []graph.Edge
	FinalNodes   []int
	FinalEdges   []graph.Edge
}

// Reset clears all four sets.
func (s *State) Reset() { *s = State{} }

// Empty reports whether nothing is highlighted.
func (s *State) Empty() bool {
	return len(s.CurrentNodes) == 0 && len(s.CurrentEdges) == 0 &&
		len(s.FinalNodes) == 0 && len(s.FinalEdges) == 0
}

// Mark is the highlight of a node or edge.
type Mark int

const (
	Plain Mark = iota
	Current
	Final
)

func (m Mark) String() string {
	switch m {
	case Current:
		return "current"
	case Final:
		return "final"
	}
	return "plain"
}

// Scene is the renderable view of a graph run. It is only valid during the
// Redraw call that receives it.
type Scene struct {
	Graph *graph.Graph
	State *State
}

// Kind implements step.Scene.
func (Scene) Kind() string { return "graph" }

// NodeMark returns the highlight of node id. A node on the active path is
// drawn as current even if it already belongs to the result.
func (s Scene) NodeMark(id int) Mark {
	if s.State == nil {
		return Plain
	}
	switch {
	case slices.Contains(s.State.CurrentNodes, id):
		return Current
	case slices.Contains(s.State.FinalNodes, id):
		return Final
	}
	return Plain
}

// EdgeMark returns the highlight of e. Result edges take precedence.
func (s Scene) EdgeMark(e graph.Edge) Mark {
	if s.State == nil || s.Graph == nil {
		return Plain
	}
	same := func(o graph.Edge) bool { return s.Graph.SameEdge(o, e) }
	switch {
	case slices.ContainsFunc(s.State.FinalEdges, same):
		return Final
	case slices.ContainsFunc(s.State.CurrentEdges, same):
		return Current
	}
	return Plain
}

// Result is a trail: a node sequence and the edges between consecutive
// nodes. A circuit repeats its first node at the end.
type Result struct {
	Nodes []int        `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

func newResult(nodes []int) Result {
	r := Result{Nodes: nodes}
	for i := 1; i < len(nodes); i++ {
		r.Edges = append(r.Edges, graph.Edge{From: nodes[i-1], To: nodes[i]})
	}
	return r
}

// String formats the trail as "0 -> 1 -> 2".
func (r Result) String() string {
	parts := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " -> ")
}

// Closed reports whether the trail ends where it starts.
func (r Result) Closed() bool {
	return len(r.Nodes) > 1 && r.Nodes[0] == r.Nodes[len(r.Nodes)-1]
}
