package trail

import (
	"fmt"
	"slices"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
)

// Eulerian finds a trail that uses every edge exactly once. Circuit mode
// requires the trail to be closed. When the graph does not qualify the run
// is narrated and a NO_EULERIAN_TRAIL error is returned.
func (e *Engine) Eulerian(kind Kind) (Result, error) {
	if err := e.begin(); err != nil {
		return Result{}, err
	}
	alg, lines := AlgEulerUndirected, undirectedLines
	if e.g.Directed {
		alg, lines = AlgEulerDirected, directedLines
	}
	e.step(alg, lines.entry, fmt.Sprintf("// starting Eulerian %s", kind), drawUnits)

	start, err := e.eulerStart(kind)
	if err != nil {
		e.say(fmt.Sprintf("// no Eulerian %s exists: %s", kind, errors.UserMessage(err)))
		e.ResetColors()
		return Result{}, err
	}

	nodes := e.hierholzer(alg, lines, start)

	res := newResult(nodes)
	e.step(alg, lines.ret, fmt.Sprintf("// Eulerian %s found:", kind), 1)
	e.say(res.String())
	e.ResetColors()
	return res, nil
}

// eulerStart checks the degree conditions for kind and picks the start node.
func (e *Engine) eulerStart(kind Kind) (int, error) {
	ids := e.g.IDs()
	deg := e.g.Degrees()

	if !e.g.EdgesConnected() {
		return 0, errors.New(errors.ErrCodeNoEulerianTrail, "edges are disconnected")
	}

	// Circuits start at the first node that has an edge.
	first := ids[0]
	for _, id := range ids {
		if deg[id].Out > 0 {
			first = id
			break
		}
	}

	if e.g.Directed {
		var plus, minus []int
		unbalanced := 0
		for _, id := range ids {
			switch b := deg[id].Balance(); {
			case b == 1:
				plus = append(plus, id)
			case b == -1:
				minus = append(minus, id)
			case b != 0:
				unbalanced++
			}
		}
		e.say(fmt.Sprintf("// nodes with out-in = +1: %v, in-out = +1: %v, other unbalanced: %d", plus, minus, unbalanced))
		switch {
		case kind == Circuit && len(plus) == 0 && len(minus) == 0 && unbalanced == 0:
			return first, nil
		case kind == Path && len(plus) == 1 && len(minus) == 1 && unbalanced == 0:
			return plus[0], nil
		case kind == Circuit:
			return 0, errors.New(errors.ErrCodeNoEulerianTrail, "in-degree and out-degree differ on some node")
		default:
			return 0, errors.New(errors.ErrCodeNoEulerianTrail, "need exactly one start node and one end node")
		}
	}

	var odd []int
	for _, id := range ids {
		if deg[id].Out%2 != 0 {
			odd = append(odd, id)
		}
	}
	e.say(fmt.Sprintf("// number of odd degree nodes: %d", len(odd)))
	switch {
	case len(odd) == 0:
		return first, nil
	case kind == Path && len(odd) == 2:
		return odd[0], nil
	case kind == Circuit:
		return 0, errors.New(errors.ErrCodeNoEulerianTrail, "%d nodes have odd degree", len(odd))
	default:
		return 0, errors.New(errors.ErrCodeNoEulerianTrail, "%d nodes have odd degree, need 0 or 2", len(odd))
	}
}

// hierholzer walks consumable adjacency lists from start and returns the
// trail. The directed trail is reversed so that it follows edge direction.
func (e *Engine) hierholzer(alg string, lines eulerLines, start int) []int {
	adj := make(map[int][]int, len(e.g.Nodes))
	for _, n := range e.g.Nodes {
		adj[n.ID] = e.g.Neighbors(n.ID)
	}

	stack := []int{start}
	var circuit []int
	e.state.CurrentNodes = append(e.state.CurrentNodes, start)
	e.step(alg, lines.push, fmt.Sprintf("stack := []int{%d}", start), drawUnits)

	for len(stack) > 0 {
		e.step(alg, lines.loop, "", 1)
		cur := stack[len(stack)-1]
		e.step(alg, lines.top, "", 1)
		e.step(alg, lines.check, "", 1)

		if len(adj[cur]) > 0 {
			next := adj[cur][len(adj[cur])-1]
			e.step(alg, lines.next, "", 1)
			adj[cur] = adj[cur][:len(adj[cur])-1]
			e.step(alg, lines.pop, "", 1)
			if !e.g.Directed {
				adj[next] = removeOnce(adj[next], cur)
				e.step(alg, lines.remove, "", 1)
			}
			stack = append(stack, next)
			e.state.CurrentNodes = append(e.state.CurrentNodes, next)
			e.state.CurrentEdges = append(e.state.CurrentEdges, graph.Edge{From: cur, To: next})
			e.step(alg, lines.descend, fmt.Sprintf("stack = append(stack, %d)", next), drawUnits)
			continue
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		circuit = append(circuit, node)
		e.state.CurrentNodes = e.state.CurrentNodes[:len(e.state.CurrentNodes)-1]
		e.step(alg, lines.finish, "", 1)

		if len(stack) > 0 {
			prev := stack[len(stack)-1]
			edge := graph.Edge{From: node, To: prev}
			if e.g.Directed {
				edge = graph.Edge{From: prev, To: node}
			}
			e.state.FinalEdges = append(e.state.FinalEdges, edge)
			e.state.CurrentEdges = e.removeEdgeOnce(e.state.CurrentEdges, edge)
		}
		e.state.FinalNodes = append(e.state.FinalNodes, node)
		e.step(alg, lines.popStack, fmt.Sprintf("circuit = append(circuit, %d); stack = stack[:len(stack)-1]", node), drawUnits)
	}

	if e.g.Directed {
		slices.Reverse(circuit)
	}
	return circuit
}

// removeOnce removes the last occurrence of v. Only one entry goes so that
// parallel edges survive.
func removeOnce(s []int, v int) []int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return slices.Delete(s, i, i+1)
		}
	}
	return s
}

func (e *Engine) removeEdgeOnce(s []graph.Edge, edge graph.Edge) []graph.Edge {
	for i := len(s) - 1; i >= 0; i-- {
		if e.g.SameEdge(s[i], edge) {
			return slices.Delete(s, i, i+1)
		}
	}
	return s
}
