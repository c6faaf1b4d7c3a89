package trail

import (
	"fmt"
	"slices"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
)

// search is the backtracking state of one Hamiltonian run.
type search struct {
	kind    Kind
	visited map[int]bool
	path    []int
}

// Hamiltonian finds a trail that visits every node exactly once. Circuit
// mode additionally needs an edge from the last node back to the first and
// repeats the first node at the end of the result. When no start node
// yields a trail the run is narrated and a NO_HAMILTONIAN_TRAIL error is
// returned.
func (e *Engine) Hamiltonian(kind Kind) (Result, error) {
	if err := e.begin(); err != nil {
		return Result{}, err
	}
	e.step(AlgHamiltonian, hamEntry, fmt.Sprintf("// starting Hamiltonian %s", kind), 1)

	s := &search{kind: kind, visited: make(map[int]bool, len(e.g.Nodes))}
	for _, start := range e.g.IDs() {
		e.say(fmt.Sprintf("// trying to start from node %d", start))
		if e.backtrack(s, start) {
			res := newResult(s.path)
			e.say(res.String())
			e.ResetColors()
			return res, nil
		}
	}

	e.say(fmt.Sprintf("// no Hamiltonian %s exists", kind))
	e.ResetColors()
	return Result{}, errors.New(errors.ErrCodeNoHamiltonianTrail, "no Hamiltonian %s from any start node", kind)
}

func (e *Engine) backtrack(s *search, node int) bool {
	e.step(AlgHamiltonian, hamAppend, fmt.Sprintf("path = append(path, %d)", node), 1)
	e.step(AlgHamiltonian, hamVisit, fmt.Sprintf("visited[%d] = true", node), 1)
	s.path = append(s.path, node)
	s.visited[node] = true
	e.state.CurrentNodes = append(e.state.CurrentNodes, node)
	e.redraw(drawUnits)

	if len(s.path) == len(e.g.Nodes) {
		first := s.path[0]
		if s.kind == Path || e.g.HasEdge(node, first) {
			if s.kind == Circuit {
				s.path = append(s.path, first)
			}
			e.commit(s.path)
			e.step(AlgHamiltonian, hamFull, "", 1)
			e.step(AlgHamiltonian, hamDone, fmt.Sprintf("// Hamiltonian %s found:", s.kind), drawUnits)
			return true
		}
		e.step(AlgHamiltonian, hamFull, fmt.Sprintf("// no edge from %d back to %d", node, first), 1)
	}

	for _, next := range e.g.Neighbors(node) {
		e.step(AlgHamiltonian, hamLoop, "", 1)
		if s.visited[next] {
			continue
		}
		e.step(AlgHamiltonian, hamUnseen, "", 1)
		e.state.CurrentEdges = append(e.state.CurrentEdges, graph.Edge{From: node, To: next})
		e.step(AlgHamiltonian, hamRecurse, "", drawUnits)
		if e.backtrack(s, next) {
			e.step(AlgHamiltonian, hamFound, "", 1)
			return true
		}
		e.state.CurrentEdges = e.state.CurrentEdges[:len(e.state.CurrentEdges)-1]
		e.redraw(drawUnits)
	}

	e.step(AlgHamiltonian, hamUnvisit, fmt.Sprintf("visited[%d] = false", node), 1)
	e.step(AlgHamiltonian, hamTruncate, "path = path[:len(path)-1]", 1)
	s.path = s.path[:len(s.path)-1]
	delete(s.visited, node)
	e.state.CurrentNodes = e.state.CurrentNodes[:len(e.state.CurrentNodes)-1]
	e.redraw(drawUnits)
	e.step(AlgHamiltonian, hamFail, "", 0)
	return false
}

// commit replaces the active path highlight with the finished trail.
func (e *Engine) commit(path []int) {
	res := newResult(path)
	e.state.CurrentNodes = nil
	e.state.CurrentEdges = nil
	e.state.FinalNodes = slices.Clone(res.Nodes)
	e.state.FinalEdges = res.Edges
}
